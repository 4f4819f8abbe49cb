package cmd

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/config"
	"github.com/jobhunter/backend/llm"
	"github.com/jobhunter/backend/search"
	"github.com/jobhunter/backend/storage"
)

// deps holds the collaborators built from configuration. Optional ones are
// nil when unconfigured.
type deps struct {
	llm      *llm.Client
	searcher search.Searcher
	files    *storage.CloudStorageClient
	records  *storage.FirestoreClient
	agent    *agent.ChatAgent
}

func buildDeps(ctx context.Context, cfg *config.Config, log *zap.Logger, withArchive bool) (*deps, error) {
	d := &deps{}

	client, err := llm.NewFromConfig(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	d.llm = client
	if client == nil {
		log.Warn("language model not configured, feedback and advice use templates and resume parsing is disabled",
			zap.String("provider", cfg.LLMProvider))
	} else {
		log.Info("language model ready",
			zap.String("provider", client.ProviderName()),
			zap.Strings("models", client.Models()))
	}

	d.searcher = search.NewFromConfig(cfg, log)
	if d.searcher == nil {
		log.Warn("job search not configured, searches return sample listings",
			zap.String("provider", cfg.SearchProvider))
	}

	if withArchive {
		if cfg.FirestoreEnabled {
			if d.records, err = storage.NewFirestoreClient(ctx, cfg.ProjectID); err != nil {
				d.close(log)
				return nil, err
			}
			log.Info("resume archive enabled", zap.String("project", cfg.ProjectID))

			if cfg.CVBucketName != "" {
				if d.files, err = storage.NewCloudStorageClient(ctx, cfg.CVBucketName); err != nil {
					d.close(log)
					return nil, err
				}
				log.Info("resume uploads enabled", zap.String("bucket", cfg.CVBucketName))
			}
		}
	}

	// interface fields must stay nil, not typed-nil pointers
	var model agent.LanguageModel
	if d.llm != nil {
		model = d.llm
	}
	var searcher agent.JobSearcher
	if d.searcher != nil {
		searcher = d.searcher
	}

	d.agent = agent.NewChatAgent(agent.NewSessionStore(), model, searcher, log)
	return d, nil
}

// services describes the collaborators for the health endpoint
func (d *deps) services(cfg *config.Config) map[string]string {
	services := map[string]string{
		"llm":     "templates",
		"search":  "sample data",
		"archive": "disabled",
		"uploads": "disabled",
	}
	if d.llm != nil {
		services["llm"] = d.llm.ProviderName()
	}
	if d.searcher != nil {
		services["search"] = cfg.SearchProvider
	}
	if d.records != nil {
		services["archive"] = "firestore"
	}
	if d.files != nil {
		services["uploads"] = "cloud storage"
	}
	return services
}

func (d *deps) close(log *zap.Logger) {
	var errs []error
	if d.llm != nil {
		errs = append(errs, d.llm.Close())
	}
	if d.records != nil {
		errs = append(errs, d.records.Close())
	}
	if d.files != nil {
		errs = append(errs, d.files.Close())
	}
	if err := errors.Join(errs...); err != nil {
		log.Warn("closing clients", zap.Error(err))
	}
}
