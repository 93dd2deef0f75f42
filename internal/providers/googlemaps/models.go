package googlemaps

// GeocodeAPIResponse is the Google Geocoding API response. Only the fields
// the bot reads are modeled.
type GeocodeAPIResponse struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimezoneAPIResponse is the Google Time Zone API response. Offsets are in
// seconds; the API emits them as JSON numbers.
type TimezoneAPIResponse struct {
	Status       string  `json:"status"`
	RawOffset    float64 `json:"rawOffset"`
	DstOffset    float64 `json:"dstOffset"`
	TimeZoneID   string  `json:"timeZoneId"`
	TimeZoneName string  `json:"timeZoneName"`
}
