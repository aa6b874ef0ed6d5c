package blobstore

type Config struct {
	Storage       string `yaml:"storage"`
	FilesystemDir string `yaml:"filesystem_dir"`
}
