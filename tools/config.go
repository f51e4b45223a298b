package tools

// Config is the common configuration embedded by every tool.
// Name, description and availability are fixed at construction time.
type Config struct {
	// name the registry name of the tool
	name string
	// description the default description of the tool
	description string
	// available whether the availability probe succeeded
	available bool
}

func (c *Config) SetName(v string) {
	c.name = v
}

func (c Config) Name() string {
	return c.name
}

func (c *Config) SetDescription(v string) {
	c.description = v
}

func (c Config) Description() string {
	return c.description
}

func (c *Config) SetAvailable(v bool) {
	c.available = v
}

func (c Config) Available() bool {
	return c.available
}
