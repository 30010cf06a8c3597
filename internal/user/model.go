package user

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Role        Role     `json:"role"`
	Avatar      string   `json:"avatar,omitempty"`
	Verified    bool     `json:"verified"`
	SavedJobIDs []string `json:"savedJobIds,omitempty"`

	// candidate profile
	Title      string       `json:"title,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	Location   string       `json:"location,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	CVURL      string       `json:"cvUrl,omitempty"`

	// company profile
	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	Website            string `json:"website,omitempty"`
	Sector             string `json:"sector,omitempty"`
	CurrentPlan        string `json:"currentPlan,omitempty"`
}

func (u User) IsCompany() bool {
	return u.Role == RoleCompany
}

// HasSavedJob reports whether jobID is in the user's saved list.
func (u User) HasSavedJob(jobID string) bool {
	for _, id := range u.SavedJobIDs {
		if id == jobID {
			return true
		}
	}
	return false
}

// ToggleSavedJob adds jobID to the saved list, or removes it when already
// present, returning whether the job ends up saved.
func (u *User) ToggleSavedJob(jobID string) bool {
	for i, id := range u.SavedJobIDs {
		if id == jobID {
			saved := make([]string, 0, len(u.SavedJobIDs)-1)
			saved = append(saved, u.SavedJobIDs[:i]...)
			u.SavedJobIDs = append(saved, u.SavedJobIDs[i+1:]...)
			return false
		}
	}
	u.SavedJobIDs = append(append([]string(nil), u.SavedJobIDs...), jobID)
	return true
}
