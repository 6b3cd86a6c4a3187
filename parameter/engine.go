package parameter

// Core animation tuning
const (
	// TransitionWidth is the span, in step units, over which a marker eases
	// into its next lane slot. The ease reaches exactly 1 at the trigger
	// boundary, so displacement stays continuous across it
	TransitionWidth = 0.5

	// Velocity bounds in step units per millisecond, enforced at the control
	// boundary. The engine trusts stored values
	VelocityMin     = 0.001
	VelocityMax     = 0.05
	VelocityDefault = 0.01

	// RowCountMax caps the number of counter lanes
	RowCountMax = 100

	// TickRate is the default scheduler frequency in frames per second
	TickRate = 30

	// OpacityCull drops markers too faint to matter from renderer input
	OpacityCull = 0.01
)
