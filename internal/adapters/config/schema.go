package config

// piperfile represents the structure of the piper.yaml configuration file.
type piperfile struct {
	Version     string            `yaml:"version"`
	Script      string            `yaml:"script"`
	Defaults    defaultsDTO       `yaml:"defaults"`
	Environment map[string]string `yaml:"environment"`
}

// defaultsDTO holds the conversion settings used when the caller does not
// override them on the command line.
type defaultsDTO struct {
	Quality  int  `yaml:"quality"`
	Lossless bool `yaml:"lossless"`
}
