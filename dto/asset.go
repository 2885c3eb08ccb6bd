package dto

type UploadAssetResponse struct {
	AssetID     string `json:"asset_id"`
	Folder      string `json:"folder"`
	ReferenceID string `json:"reference_id"`
	ObjectName  string `json:"object_name"`
	Size        int64  `json:"size"`
}

type AssetURLResponse struct {
	ReferenceID string `json:"reference_id"`
	URL         string `json:"url"`
	ExpiresIn   int64  `json:"expires_in"`
}
