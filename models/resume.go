package models

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// ResumeProfile represents the structured data extracted from a resume
type ResumeProfile struct {
	// Personal Information
	Name  string `json:"name" binding:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Skills as extracted, in order, duplicates included
	Skills []string `json:"skills"`

	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`

	Summary string `json:"summary,omitempty"`
	RawText string `json:"raw_text,omitempty"`
}

// Experience represents one position in the work history.
// Dates are free-form strings and are not guaranteed to be parseable.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Education represents educational background
type Education struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
}

// ResumeRecord is an archived parse result
type ResumeRecord struct {
	ID        string        `json:"id" firestore:"-"`
	Profile   ResumeProfile `json:"profile" firestore:"profile"`
	FileURL   string        `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FileName  string        `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	CreatedAt time.Time     `json:"created_at" firestore:"createdAt"`
}

// Validate checks that the profile has the shape the chat agent relies on
func (p *ResumeProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// Normalize replaces nil collections with empty ones so the profile
// serializes the same way regardless of its source
func (p *ResumeProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
}

// Clone returns a copy that shares no slices with p
func (p *ResumeProfile) Clone() ResumeProfile {
	c := *p
	c.Skills = slices.Clone(p.Skills)
	c.Experience = slices.Clone(p.Experience)
	c.Education = slices.Clone(p.Education)
	for i := range c.Education {
		if gpa := c.Education[i].GPA; gpa != nil {
			v := *gpa
			c.Education[i].GPA = &v
		}
	}
	return c
}

// TopSkills returns at most n skills from the front of the list
func (p *ResumeProfile) TopSkills(n int) []string {
	if n > len(p.Skills) {
		n = len(p.Skills)
	}
	if n < 0 {
		n = 0
	}
	return p.Skills[:n]
}

// FirstName returns the first token of the name, or an empty string
func (p *ResumeProfile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
