package entity

// Lead is the prospect record sent by the caller. Field names follow the
// enrichment provider payload as-is.
type Lead struct {
	ID               string `json:"_id,omitempty"`
	UniqueIdentifier string `json:"uniqueIdentifier"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	FullName         string `json:"fullName"`
	LinkedinURL      string `json:"linkedinUrl"`
	LinkedinUsername string `json:"linkedinUsername"`
	LinkedinID       string `json:"linkedinId"`
	TwitterURL       string `json:"twitterUrl"`
	TwitterUsername  string `json:"twitterUsername"`
	WorkEmail        string `json:"workEmail"`
	Industry         string `json:"industry"`

	JobTitle                         string   `json:"jobTitle"`
	JobCompanyName                   string   `json:"jobCompanyName"`
	JobCompanyWebsite                string   `json:"jobCompanyWebsite"`
	JobCompanyIndustry               string   `json:"jobCompanyIndustry"`
	JobCompany12moEmployeeGrowthRate float64  `json:"jobCompany12moEmployeeGrowthRate"`
	JobCompanyTotalFundingRaised     float64  `json:"jobCompanyTotalFundingRaised"`
	JobCompanyInferredRevenue        *string  `json:"jobCompanyInferredRevenue,omitempty"`
	JobCompanyEmployeeCount          int      `json:"jobCompanyEmployeeCount"`
	JobLastChanged                   string   `json:"jobLastChanged"`
	JobLastVerified                  string   `json:"jobLastVerified"`
	JobStartDate                     string   `json:"jobStartDate"`
	JobCompanySize                   *string  `json:"jobCompanySize,omitempty"`
	JobCompanyFounded                int      `json:"jobCompanyFounded"`
	JobCompanyLocationRegion         string   `json:"jobCompanyLocationRegion"`
	LocationName                     string   `json:"locationName"`
	LocationCountry                  string   `json:"locationCountry"`
	Skills                           []string `json:"skills"`

	Education Education `json:"education"`

	Gender           string `json:"gender"`
	CompanyEmployees string `json:"companyEmployees"`
	DataProvider     string `json:"dataProvider"`
	Version          int    `json:"__v,omitempty"`
}

type Education struct {
	School      string   `json:"school"`
	LinkedinURL string   `json:"linkedinUrl"`
	StartDate   *string  `json:"startDate,omitempty"`
	EndDate     *string  `json:"endDate,omitempty"`
	DegreeName  *string  `json:"degreeName,omitempty"`
	Raw         []string `json:"raw"`
	Summary     string   `json:"summary"`
}
