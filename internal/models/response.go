package models

import "time"

type UploadResponse struct {
	ID                      string `json:"id"`
	Status                  string `json:"status"`
	Message                 string `json:"message"`
	FileName                string `json:"file_name"`
	EstimatedProcessingTime int    `json:"estimated_processing_time"`
}

type PersonalInfo struct {
	FullName  *string `json:"full_name"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Linkedin  *string `json:"linkedin"`
	Website   *string `json:"website"`
}

type WorkExperience struct {
	Title        *string  `json:"title"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	Current      bool     `json:"current"`
	Description  *string  `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	Degree         *string  `json:"degree"`
	Field          *string  `json:"field"`
	Institution    *string  `json:"institution"`
	Location       *string  `json:"location"`
	GraduationDate *string  `json:"graduation_date"`
	GPA            *float64 `json:"gpa"`
}

type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type Skills struct {
	Technical []string        `json:"technical"`
	Soft      []string        `json:"soft"`
	Languages []LanguageSkill `json:"languages"`
}

type Certification struct {
	Name       *string `json:"name"`
	Issuer     *string `json:"issuer"`
	IssueDate  *string `json:"issue_date"`
	ExpiryDate *string `json:"expiry_date"`
}

type ParsedResumeResponse struct {
	ID             string           `json:"id"`
	FileName       string           `json:"file_name"`
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Summary        *string          `json:"summary"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         Skills           `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	RawText        string           `json:"raw_text"`
	ProcessedAt    time.Time        `json:"processed_at"`
}

type JobDescription struct {
	Title              string   `json:"title" validate:"required"`
	Company            *string  `json:"company"`
	Description        string   `json:"description" validate:"required"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	ExperienceRequired *string  `json:"experience_required"`
}

type MatchingScore struct {
	OverallScore    int `json:"overall_score"`
	SkillsMatch     int `json:"skills_match"`
	ExperienceMatch int `json:"experience_match"`
	EducationMatch  int `json:"education_match"`
}

type MatchingResult struct {
	MatchID        string        `json:"match_id"`
	ResumeID       string        `json:"resume_id"`
	JobTitle       string        `json:"job_title"`
	Scores         MatchingScore `json:"scores"`
	MatchedSkills  []string      `json:"matched_skills"`
	MissingSkills  []string      `json:"missing_skills"`
	Strengths      []string      `json:"strengths"`
	Gaps           []string      `json:"gaps"`
	Recommendation string        `json:"recommendation"`
	Explanation    string        `json:"explanation"`
}
