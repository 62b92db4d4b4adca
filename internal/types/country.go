package types

// CountryFilter represents the filter options for listing countries.
// IncludeInactive is an admin-only flag; public listings always exclude
// soft-deleted rows.
type CountryFilter struct {
	*QueryFilter
	IncludeInactive bool  `json:"include_inactive,omitempty" form:"include_inactive"`
	Popular         *bool `json:"popular,omitempty" form:"popular"`
}

func NewDefaultCountryFilter() *CountryFilter {
	return &CountryFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *CountryFilter) Validate() error {
	if f.QueryFilter != nil {
		return f.QueryFilter.Validate()
	}
	return nil
}
