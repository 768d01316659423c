package request

// Value is a pointer so an explicit empty string is distinguishable from a
// missing field.
type UpdateSettingRequest struct {
	Value *string `json:"value" binding:"required"`
}

type ValidateCouponQuery struct {
	Code     string `form:"code"`
	CenterID string `form:"center_id" binding:"omitempty,uuid"`
}
