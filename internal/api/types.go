package api

// Breach represents a breach record as returned by the API. Fields missing
// from a response take their zero value, matching the documented defaults.
type Breach struct {
	Name               string   `json:"Name"`
	Title              string   `json:"Title"`
	Domain             string   `json:"Domain"`
	BreachDate         string   `json:"BreachDate"`
	AddedDate          string   `json:"AddedDate"`
	ModifiedDate       string   `json:"ModifiedDate"`
	PwnCount           int64    `json:"PwnCount"`
	Description        string   `json:"Description"`
	LogoPath           string   `json:"LogoPath"`
	DataClasses        []string `json:"DataClasses"`
	IsVerified         bool     `json:"IsVerified"`
	IsFabricated       bool     `json:"IsFabricated"`
	IsSensitive        bool     `json:"IsSensitive"`
	IsRetired          bool     `json:"IsRetired"`
	IsSpamList         bool     `json:"IsSpamList"`
	IsMalware          bool     `json:"IsMalware"`
	IsStealerLog       bool     `json:"IsStealerLog"`
	IsSubscriptionFree bool     `json:"IsSubscriptionFree"`
	Attribution        string   `json:"Attribution"`
}

// Paste represents a paste record as returned by the API.
type Paste struct {
	Source     string `json:"Source"`
	ID         string `json:"Id"`
	Title      string `json:"Title"`
	Date       string `json:"Date"`
	EmailCount int    `json:"EmailCount"`
}

// Subscription represents the subscription/status response.
type Subscription struct {
	SubscriptionName                string `json:"SubscriptionName"`
	Description                     string `json:"Description"`
	SubscribedUntil                 string `json:"SubscribedUntil"`
	Rpm                             int    `json:"Rpm"`
	DomainSearchMaxBreachedAccounts int    `json:"DomainSearchMaxBreachedAccounts"`
	IncludesStealerLogs             bool   `json:"IncludesStealerLogs"`
}

// SubscribedDomain represents one entry of the subscribeddomains response.
type SubscribedDomain struct {
	DomainName                                          string `json:"DomainName"`
	PwnCount                                            int64  `json:"PwnCount"`
	PwnCountExcludingSpamLists                          int64  `json:"PwnCountExcludingSpamLists"`
	PwnCountExcludingSpamListsAtLastSubscriptionRenewal int64  `json:"PwnCountExcludingSpamListsAtLastSubscriptionRenewal"`
	NextSubscriptionRenewal                             string `json:"NextSubscriptionRenewal"`
}
