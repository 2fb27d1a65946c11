package api

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type eventInput struct {
	Title       *string `json:"title"`
	Group       *string `json:"group"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	EndDate     *string `json:"endDate"`
	IsAnnual    *bool   `json:"isAnnual"`
}

type checkinInput struct {
	Mood   string `json:"mood"`
	Energy int    `json:"energy"`
	Note   string `json:"note"`
}

type periodDayInput struct {
	Date       string   `json:"date"`
	IsPeriod   bool     `json:"isPeriod"`
	Symptoms   []string `json:"symptoms"`
	Mood       []string `json:"mood"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

type cycleSettingsInput struct {
	CycleLength  int `json:"cycleLength"`
	PeriodLength int `json:"periodLength"`
}

type pinInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Date        string  `json:"date"`
}

type ideaInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type spinInput struct {
	Category string `json:"category"`
}

type connectInput struct {
	Code string `json:"code"`
}

type preferenceInput struct {
	AccentColor string `json:"accentColor"`
	Theme       string `json:"theme"`
}
