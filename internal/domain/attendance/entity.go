package attendance

// Status is the canonical attendance status of one employee on one day
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

// Raw status codes emitted by the source of record
const (
	CodeValid           = "VALID"
	CodeInvalidLocation = "INVALID_LOCATION"
	CodeAbsent          = "ABSENT"
	CodeLeave           = "LEAVE"
)

// LocationType classifies a clock action relative to the reference point
type LocationType string

const (
	LocationInside  LocationType = "inside"
	LocationOutside LocationType = "outside"
)

// InsideRadiusKM is the exclusive upper bound for an "inside" classification
const InsideRadiusKM = 0.1

// LocationSample is the position recorded with a clock action
type LocationSample struct {
	DistanceKM float64
	Latitude   float64
	Longitude  float64
}

// RawEvent is an unprocessed attendance record as received from the source of record.
type RawEvent struct {
	ID                 string
	EmployeeID         string
	Date               string // YYYY-MM-DD
	ClockIn            string // ISO-8601
	ClockOut           *string
	ClockInLocation    LocationSample
	ClockOutLocation   *LocationSample
	StatusCode         string
	ClockOutStatusCode *string
}

// Location is a classified clock action position
type Location struct {
	Type       LocationType `json:"type"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	DistanceKM float64      `json:"distance_km"`
}

// Fact is the normalized form of one raw event. Facts are never mutated once built.
type Fact struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	Date             string    `json:"date"`
	ClockIn          string    `json:"clock_in"`
	ClockOut         *string   `json:"clock_out"`
	ClockInLocation  Location  `json:"clock_in_location"`
	ClockOutLocation *Location `json:"clock_out_location,omitempty"`
	Status           Status    `json:"status"`
}

// StatusCounts holds per-status employee counts for one day
type StatusCounts struct {
	Present int
	Late    int
	Absent  int
	Leave   int
}

// Total returns the sum of all buckets
func (c StatusCounts) Total() int {
	return c.Present + c.Late + c.Absent + c.Leave
}
