package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/hjson"
	"github.com/knadh/koanf/providers/cliflagv2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
)

const (
	appName    = "celldata"
	configFile = "celldata.conf"
)

// Config describes the configuration for the app.
type Config struct {
	path string

	Values Values
}

// NewConfig returns a new configuration.
func NewConfig() *Config {
	return &Config{}
}

// Load loads the configuration from the configuration file and the command-line flags.
func (c *Config) Load(k *koanf.Koanf, cliCtx *cli.Context) error {
	if err := c.createConfigDir(); err != nil {
		return err
	}

	cfgfile, err := c.FilePath(configFile)
	if err != nil {
		return err
	}

	if err := c.loadFile(k, cfgfile); err != nil {
		return err
	}

	if err := k.Load(cliflagv2.Provider(cliCtx, "."), nil); err != nil {
		return err
	}

	return c.unmarshal(k)
}

// ValidateValues validates the configuration values.
func (c *Config) ValidateValues() error {
	return c.Values.validateValues()
}

// Dir returns the configuration directory.
func (c *Config) Dir() string {
	return c.path
}

// loadFile loads an HJSON configuration file.
func (c *Config) loadFile(k *koanf.Koanf, cfgfile string) error {
	if err := k.Load(file.Provider(cfgfile), hjson.Parser()); err != nil {
		return fmt.Errorf("%s: cannot parse configuration: %w", cfgfile, err)
	}

	return nil
}

// unmarshal stores the loaded configuration in the values.
func (c *Config) unmarshal(k *koanf.Koanf) error {
	return k.UnmarshalWithConf("", &c.Values, koanf.UnmarshalConf{Tag: "koanf"})
}

// createConfigDir checks for and/or creates a configuration directory.
func (c *Config) createConfigDir() error {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	type configDir struct {
		path, fullpath        string
		hidden, prefixHomeDir bool
	}

	configPaths := []*configDir{
		{path: os.Getenv("XDG_CONFIG_HOME")},
		{path: ".config", prefixHomeDir: true},
		{path: ".", hidden: true, prefixHomeDir: true},
	}

	for _, dir := range configPaths {
		name := appName

		if dir.path == "" {
			continue
		}

		if dir.hidden {
			name = "." + name
		}

		if dir.prefixHomeDir {
			dir.path = filepath.Join(homedir, dir.path)
		}

		dir.fullpath = filepath.Join(dir.path, name)
		if _, err := os.Stat(filepath.Clean(dir.fullpath)); err == nil {
			c.path = dir.fullpath
			break
		}
	}

	if c.path != "" {
		return nil
	}

	var pathErrors []string

	for _, dir := range configPaths {
		if dir.fullpath == "" {
			continue
		}

		if err := os.Mkdir(dir.fullpath, os.ModePerm); err == nil {
			c.path = dir.fullpath
			return nil
		}

		pathErrors = append(pathErrors, dir.fullpath)
	}

	return fmt.Errorf("the configuration directories could not be created at %s%s", "\n", strings.Join(pathErrors, "\n"))
}

// FilePath returns the absolute path for the given configuration file.
// The file is created if it does not exist.
func (c *Config) FilePath(configFile string) (string, error) {
	confPath := filepath.Join(c.path, configFile)

	if _, err := os.Stat(confPath); err != nil {
		fd, err := os.Create(confPath)
		if err != nil {
			return "", fmt.Errorf("cannot create "+configFile+" file at %s", confPath)
		}
		fd.Close()
	}

	return confPath, nil
}

// GenerateAndSave writes the current configuration to the configuration file.
func (c *Config) GenerateAndSave(currentCfg *koanf.Koanf) error {
	cfg := currentCfg.Copy()
	cfg.Delete("generate")

	data, err := hjson.Parser().Marshal(cfg.All())
	if err != nil {
		return err
	}

	conf, err := c.FilePath(configFile)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(conf, os.O_WRONLY|os.O_TRUNC, os.ModePerm)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		return err
	}

	return f.Sync()
}
