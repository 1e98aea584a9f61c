package dashsdk

import "time"

// User is the identity object returned alongside login/refresh responses.
// The client never parses token payloads; this object is its only source of
// identity.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// FullName is a display helper.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionData carries the user object inside login/refresh envelopes. The
// tokens themselves travel only as HTTP-only cookies.
type SessionData struct {
	User User `json:"user"`
}

// Location mirrors the server's location resource.
type Location struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	PosLocationID string    `json:"posLocationId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LocationRequest is the POST/PUT /api/locations body.
type LocationRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PosLocationID string `json:"posLocationId"`
}

// LocationData wraps a single location response.
type LocationData struct {
	Location Location `json:"location"`
}

// LocationListData is one page of the roster.
type LocationListData struct {
	Locations  []Location `json:"locations"`
	Total      int64      `json:"total"`
	Page       int64      `json:"page"`
	Limit      int64      `json:"limit"`
	TotalPages int64      `json:"totalPages"`
}

// Goals mirrors the server's per-location targets resource.
type Goals struct {
	LocationID    string    `json:"locationId"`
	SalesGoal     float64   `json:"salesGoal"`
	LaborCostGoal float64   `json:"laborCostGoal"`
	HoursGoal     float64   `json:"hoursGoal"`
	SPMHGoal      float64   `json:"spmhGoal"`
	FoodCostGoal  float64   `json:"foodCostGoal"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// GoalsRequest is the PUT /api/goals body.
type GoalsRequest struct {
	LocationID    string  `json:"locationId"`
	SalesGoal     float64 `json:"salesGoal"`
	LaborCostGoal float64 `json:"laborCostGoal"`
	HoursGoal     float64 `json:"hoursGoal"`
	SPMHGoal      float64 `json:"spmhGoal"`
	FoodCostGoal  float64 `json:"foodCostGoal"`
}

// GoalsData wraps a goals response.
type GoalsData struct {
	Goals Goals `json:"goals"`
}

// HealthResponse is the GET /api/health body. It is flat rather than
// enveloped; the timestamp doubles as a liveness signal.
type HealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
