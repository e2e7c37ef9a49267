package sharepoint

// Response is the verbose OData envelope returned by the list items endpoint.
type Response struct {
	D Page `json:"d"`
}

type Page struct {
	Results []Item `json:"results"`
	Next    string `json:"__next"`
}

// Item is one raw list row. Column names are SharePoint internal names.
type Item struct {
	ID                  int64   `json:"Id"`
	Title               *string `json:"Title1"`
	ServiceArea         *string `json:"Service_x0020_Area12"`
	Description         *string `json:"Description12"`
	Subtitle            *string `json:"Subtitle"`
	PlannedUnplanned    *string `json:"Planned_x0020_Unplanned"`
	AreaType            *string `json:"Areatype"`
	Area                *string `json:"Area"`
	AddressLocation     *string `json:"Address_x0020_Location_x0020_2"`
	AllLocationSelected *string `json:"All_x0020_Location_x0020_Selected"`
	PublishDate         *string `json:"Publish_x0020_Date"`
	EffectiveDate       *string `json:"Effective_x0020_Date"`
	StartTime           *string `json:"Start_x0020_Time"`
	ForecastEndTime     *string `json:"Forecast_x0020_End_x0020_Time"`
	ExpiryDate          *string `json:"Alert_x0020_Expiry_x0020_Date"`
	ReferenceNo         *string `json:"Reference_x0020_No"`
	Status              *string `json:"Status12"`
}
