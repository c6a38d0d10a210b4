package types

// ResumeForm is the structured input for building a resume document.
// Field names mirror the stored resume content payload.
type ResumeForm struct {
	PersonalDetails PersonalDetails   `json:"personal_info"`
	Summary         string            `json:"summary,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Education       []EducationEntry  `json:"education,omitempty"`
	Projects        []ProjectEntry    `json:"projects,omitempty"`
	Skills          SkillGroups       `json:"skills"`
	TargetRole      string            `json:"target_role,omitempty"`
}

// PersonalDetails holds the contact block of a resume form.
type PersonalDetails struct {
	FullName  string `json:"full_name" validate:"required,min=1"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ExperienceEntry is one job in the experience section of a resume form.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one school in the education section of a resume form.
type EducationEntry struct {
	School         string `json:"school"`
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// ProjectEntry is one project in the projects section of a resume form.
type ProjectEntry struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies,omitempty"`
	Description  string `json:"description,omitempty"`
	Link         string `json:"link,omitempty"`
}

// SkillGroups buckets resume skills the way the builder form collects them.
type SkillGroups struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Tools     []string `json:"tools,omitempty"`
}

// Validate validates the ResumeForm using the validator.
func (f *ResumeForm) Validate() error {
	return validate.Struct(f)
}
