package entity

// StoredBlob is where a backend put an upload and how many bytes it wrote.
type StoredBlob struct {
	Location string
	Data     string
	Size     int64
}
