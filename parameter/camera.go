package parameter

// 3D scene camera configuration
// When following, the camera trails the focus displacement and looks slightly
// ahead of it; otherwise it holds a fixed pose aimed at the focus
const (
	// CameraTrailDistance is how far behind the focus the camera sits along
	// the travel axis, in world units
	CameraTrailDistance = 6.0

	// CameraLookAhead is how far ahead of the focus the camera aims, in
	// world units
	CameraLookAhead = 2.0

	// CameraHeight lifts the camera above the lane plane, in world units
	CameraHeight = 3.5

	// CameraFixedDepth is the aim depth used when not following
	CameraFixedDepth = 12.0

	// CameraNearDepth is the depth of the nearest lane plane
	CameraNearDepth = 5.0

	// FocalLength scales the pinhole projection
	FocalLength = 10.0

	// LaneSpacing separates adjacent lanes along the depth axis, world units
	LaneSpacing = 1.6

	// CellAspect compensates terminal cells being taller than wide
	CellAspect = 0.5
)
