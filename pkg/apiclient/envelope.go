package apiclient

// DataEnvelope is the single-resource response wrapper: detail and create
// endpoints return their entity under a data key.
type DataEnvelope[T any] struct {
	Data T `json:"data"`
}
