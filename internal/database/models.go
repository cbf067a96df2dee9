package database

import (
	"time"

	"gorm.io/datatypes"
)

// Model is the base embedded by every resource: numeric identity plus
// system-assigned timestamps. Deletes are hard deletes, so there is no
// soft-delete column.
type Model struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Blog is a single post. Slug is derived from the title and unique;
// Views counts public reads through the slug endpoint.
type Blog struct {
	Model
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Slug        string                      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string                      `gorm:"type:text;not null" json:"content"`
	Excerpt     string                      `gorm:"type:text;not null" json:"excerpt"`
	CoverImage  string                      `gorm:"size:512" json:"coverImage"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Published   bool                        `gorm:"default:false" json:"published"`
	PublishedAt *time.Time                  `json:"publishedAt"`
	Author      string                      `gorm:"size:255;default:'Admin'" json:"author"`
	Views       int64                       `gorm:"default:0" json:"views"`
}

// Project is a portfolio entry.
type Project struct {
	Model
	Title            string                      `gorm:"size:255;not null" json:"title"`
	Description      string                      `gorm:"type:text;not null" json:"description"`
	ShortDescription string                      `gorm:"size:512;not null" json:"shortDescription"`
	Image            string                      `gorm:"size:512" json:"image"`
	TechStack        datatypes.JSONSlice[string] `json:"techStack"`
	GithubLink       string                      `gorm:"size:512" json:"githubLink"`
	LiveLink         string                      `gorm:"size:512" json:"liveLink"`
	Featured         bool                        `gorm:"default:false" json:"featured"`
	Order            int                         `gorm:"default:0" json:"order"`
}

// Skill categories accepted by the API.
const (
	SkillCategoryFrontend = "Frontend"
	SkillCategoryBackend  = "Backend"
	SkillCategoryTools    = "Tools"
	SkillCategoryOther    = "Other"
)

// ValidSkillCategory reports whether category is one of the accepted values.
func ValidSkillCategory(category string) bool {
	switch category {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryTools, SkillCategoryOther:
		return true
	}
	return false
}

// Skill has a proficiency level bounded to [0,100].
type Skill struct {
	Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Category string `gorm:"size:32;not null" json:"category"`
	Level    int    `gorm:"not null" json:"level"`
	Icon     string `gorm:"size:512" json:"icon"`
	URL      string `gorm:"size:512" json:"url"`
	Visible  bool   `json:"visible"`
	Order    int    `gorm:"default:0" json:"order"`
}

// Education describes one schooling period. EndYear is only meaningful
// while CurrentlyStudying is false.
type Education struct {
	Model
	Institution       string `gorm:"size:255;not null" json:"institution"`
	Degree            string `gorm:"size:255;not null" json:"degree"`
	FieldOfStudy      string `gorm:"size:255;not null" json:"fieldOfStudy"`
	StartYear         int    `gorm:"not null" json:"startYear"`
	EndYear           *int   `json:"endYear"`
	CurrentlyStudying bool   `gorm:"default:false" json:"currentlyStudying"`
	Description       string `gorm:"type:text" json:"description"`
	Logo              string `gorm:"size:512" json:"logo"`
	Order             int    `gorm:"default:0" json:"order"`
}

// Employment types accepted by the API.
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentFreelance  = "Freelance"
	EmploymentInternship = "Internship"
)

// ValidEmploymentType reports whether employmentType is one of the accepted values.
func ValidEmploymentType(employmentType string) bool {
	switch employmentType {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentFreelance, EmploymentInternship:
		return true
	}
	return false
}

// Experience describes one employment period. EndDate is absent while
// CurrentlyWorking is true.
type Experience struct {
	Model
	Company          string     `gorm:"size:255;not null" json:"company"`
	Role             string     `gorm:"size:255;not null" json:"role"`
	EmploymentType   string     `gorm:"size:32;not null" json:"employmentType"`
	StartDate        time.Time  `gorm:"not null" json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	CurrentlyWorking bool       `gorm:"default:false" json:"currentlyWorking"`
	Description      string     `gorm:"type:text;not null" json:"description"`
	Logo             string     `gorm:"size:512" json:"logo"`
	Order            int        `gorm:"default:0" json:"order"`
}

// Certification is a credential with optional expiry.
type Certification struct {
	Model
	Title         string     `gorm:"size:255;not null" json:"title"`
	Issuer        string     `gorm:"size:255;not null" json:"issuer"`
	IssueDate     time.Time  `gorm:"not null" json:"issueDate"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	CredentialID  string     `gorm:"size:255" json:"credentialId"`
	CredentialURL string     `gorm:"size:512" json:"credentialUrl"`
	Image         string     `gorm:"size:512" json:"image"`
	Description   string     `gorm:"type:text" json:"description"`
	Visible       bool       `json:"visible"`
	Order         int        `gorm:"default:0" json:"order"`
}

// Review is a client testimonial, rating bounded to [1,5].
type Review struct {
	Model
	ClientName  string `gorm:"size:255;not null" json:"clientName"`
	ClientTitle string `gorm:"size:255" json:"clientTitle"`
	ClientImage string `gorm:"size:512" json:"clientImage"`
	Rating      int    `json:"rating"`
	Comment     string `gorm:"type:text;not null" json:"comment"`
	Featured    bool   `json:"featured"`
	Order       int    `gorm:"default:0" json:"order"`
}

// Tag is a free-text label; blogs reference tags by name only, there is
// no relation between the two tables.
type Tag struct {
	Model
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// SocialLinks is stored as a JSON column on Profile.
type SocialLinks struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ProfileID is the fixed primary key of the Profile singleton; at most
// one row ever exists.
const ProfileID uint = 1

// Profile is the site owner's public profile.
type Profile struct {
	Model
	Name               string                          `gorm:"size:255;not null" json:"name"`
	Title              string                          `gorm:"size:255;not null" json:"title"`
	Introduction       string                          `gorm:"type:text;not null" json:"introduction"`
	ProfileImage       string                          `gorm:"size:512" json:"profileImage"`
	Resume             string                          `gorm:"size:512" json:"resume"`
	Email              string                          `gorm:"size:255;not null" json:"email"`
	Phone              string                          `gorm:"size:64" json:"phone"`
	Location           string                          `gorm:"size:255" json:"location"`
	YearsExperience    int                             `json:"yearsExperience"`
	ProjectsCompleted  int                             `json:"projectsCompleted"`
	ClientSatisfaction int                             `json:"clientSatisfaction"`
	SocialLinks        datatypes.JSONType[SocialLinks] `json:"socialLinks"`
}

// AllModels lists every table for migration.
func AllModels() []any {
	return []any{
		&Blog{},
		&Project{},
		&Skill{},
		&Education{},
		&Experience{},
		&Certification{},
		&Review{},
		&Tag{},
		&Profile{},
	}
}
