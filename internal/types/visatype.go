package types

// VisaTypeFilter represents the filter options for listing visa types
type VisaTypeFilter struct {
	*QueryFilter
	CountryID       string `json:"country_id,omitempty" form:"country_id"`
	Category        string `json:"category,omitempty" form:"category"`
	IncludeInactive bool   `json:"include_inactive,omitempty" form:"include_inactive"`
}

func NewDefaultVisaTypeFilter() *VisaTypeFilter {
	return &VisaTypeFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *VisaTypeFilter) Validate() error {
	if f.QueryFilter != nil {
		return f.QueryFilter.Validate()
	}
	return nil
}
