package model

import "time"

// SenseInfo is the per-tick snapshot of the robot's sensed state. It is
// produced once per tick by the driver and consumed read-only by the
// active element.
type SenseInfo struct {
	MeasuredVelocity float64
	MeasuredX        float64
	IsFlinching      bool
	IsKneeJerking    bool
	Timestamp        time.Time
}

// ActuateCmd is the actuation command forwarded to the robot. Exactly one
// is produced per tick by whichever element currently drives.
type ActuateCmd struct {
	Velocity float64
}

// Status is the three-way continuation result of a tick.
type Status int

const (
	StatusRunning Status = iota
	StatusSuccess
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the element's run. A terminal
// tick must be followed by exactly one Finalize and no further Tick.
func (s Status) Terminal() bool {
	return s != StatusRunning
}

// Outcome pairs the tick status with the actuation command, so the robot
// receives a command on every tick regardless of status.
type Outcome struct {
	Status  Status
	Actuate ActuateCmd
}

// ElementMeta is produced by an element's Initialize and used only for
// diagnostics and identification.
type ElementMeta struct {
	Name string
}

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord summarizes one executor run of a behavior tree.
type RunRecord struct {
	VersionedRecord
	RunID     string    `json:"run_id"`
	Behavior  string    `json:"behavior"`
	Status    string    `json:"status"`
	Ticks     int       `json:"ticks"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// TickRecord is one row of a run's tick trace.
type TickRecord struct {
	Seq              int       `json:"seq"`
	Status           string    `json:"status"`
	Velocity         float64   `json:"velocity"`
	MeasuredX        float64   `json:"measured_x"`
	MeasuredVelocity float64   `json:"measured_velocity"`
	KneeJerking      bool      `json:"knee_jerking,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// TickTrace is the recorded trace of a single run.
type TickTrace struct {
	VersionedRecord
	RunID string       `json:"run_id"`
	Ticks []TickRecord `json:"ticks"`
}
