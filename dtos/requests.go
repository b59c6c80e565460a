package dtos

// SetModeRequest switches the client's top-level navigation context.
type SetModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=home delivery taxi"`
}

// SetRegionRequest selects the tenant the app serves. Admin only.
type SetRegionRequest struct {
	RegionID string `json:"region_id" binding:"required"`
}

// SelectIslandRequest records the home-screen map shortcut.
type SelectIslandRequest struct {
	IslandID string `json:"island_id" binding:"required"`
}
