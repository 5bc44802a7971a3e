package models

// Answer is the generated response for one question together with the
// transcript chunks that were supplied to the model as context
type Answer struct {
	Text    string  `json:"text"`
	Chunks  []Chunk `json:"chunks"`
	Model   string  `json:"model"`
	VideoID string  `json:"video_id"`
}
