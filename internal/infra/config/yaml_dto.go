package config

// yamlConfig mirrors badgewire.yaml. Pointer fields distinguish an
// absent key from an explicit false, so partial files only override
// what they actually set.
type yamlConfig struct {
	Badgewire struct {
		Output struct {
			Format    string `yaml:"format"`
			Uppercase *bool  `yaml:"uppercase"`
			Binary    *bool  `yaml:"binary"`
		} `yaml:"output"`

		Strict *bool `yaml:"strict"`
	} `yaml:"badgewire"`
}
