package calendar

// Holiday is a public holiday on a specific calendar date.
// After normalization there is exactly one Holiday per date; a record
// whose literal date fell on a weekend carries Observed = true and a
// "(observed)" name suffix.
type Holiday struct {
	ID       string `json:"id,omitempty"`
	Date     Date   `json:"date"`
	Name     string `json:"name"`
	Observed bool   `json:"observed,omitempty"`
}

// Exclusion marks a date the caller asserts is NOT a holiday, overriding
// the holiday list. The engine only ever filters on it.
type Exclusion struct {
	Date Date   `json:"date"`
	Name string `json:"name,omitempty"`
}
