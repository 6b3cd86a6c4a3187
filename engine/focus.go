package engine

// Focus evaluates the leader row (movement 1) at the current step value in
// the caller's unit system. Every consumer of the recentering reference, the
// leader's own marker, the viewport offset and the 3D camera, must go
// through this one formula or they desynchronize
func Focus(step, unitSize float64) float64 {
	return ComputePosition(step, 1, unitSize).Displacement
}
