package mcpbridge

import (
	"context"
	"fmt"
	"time"

	"github.com/clibridge/mcpbridge/bridge"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Options defines command line and file configuration of a bridge server.
type Options struct {
	ConfigURL       string          `short:"c" long:"config" description:"YAML config file URL" yaml:"-" json:"-"`
	Program         string          `long:"program" description:"assistant program to run" yaml:"program" json:"program"`
	Timeout         time.Duration   `long:"timeout" description:"assistant run timeout, e.g. 280s" yaml:"timeout" json:"timeout"`
	Unbounded       bool            `long:"unbounded" description:"run the assistant without a timeout" yaml:"unbounded" json:"unbounded"`
	EmptyOutput     string          `long:"empty-output" description:"text returned when the assistant prints nothing" yaml:"emptyOutput" json:"emptyOutput"`
	ProtocolVersion string          `long:"protocol" description:"mcp protocol version" yaml:"protocol" json:"protocol"`
	LoggerName      string          `yaml:"loggerName" json:"loggerName"`
	Instructions    string          `yaml:"instructions" json:"instructions"`
	Transport       ServerTransport `group:"Transport Options" yaml:"transport" json:"transport"`
	Version         bool            `long:"version" description:"show version information" yaml:"-" json:"-"`
	Check           bool            `long:"check" description:"check that the assistant program is available" yaml:"-" json:"-"`
}

// ServerTransport defines how the server is exposed.
type ServerTransport struct {
	Type    string   `short:"T" long:"transport" description:"mcp transport type" choice:"stdio" choice:"sse" choice:"streamable" yaml:"type" json:"type"`
	Host    string   `long:"host" description:"HTTP listen host" yaml:"host" json:"host"`
	Port    int      `short:"p" long:"port" description:"HTTP listen port" yaml:"port" json:"port"`
	Origins []string `long:"origin" description:"allowed browser origin, repeatable" yaml:"origins" json:"origins"`
}

const (
	defaultHost = "127.0.0.1"
	defaultPort = 5000
)

// Init loads the config file, if any; values given on the command line take precedence.
func (o *Options) Init(ctx context.Context) error {
	if o.ConfigURL == "" {
		return nil
	}
	fileOptions, err := LoadOptions(ctx, o.ConfigURL)
	if err != nil {
		return err
	}
	o.merge(fileOptions)
	return nil
}

func (o *Options) merge(from *Options) {
	if o.Program == "" {
		o.Program = from.Program
	}
	if o.Timeout == 0 {
		o.Timeout = from.Timeout
	}
	o.Unbounded = o.Unbounded || from.Unbounded
	if o.EmptyOutput == "" {
		o.EmptyOutput = from.EmptyOutput
	}
	if o.ProtocolVersion == "" {
		o.ProtocolVersion = from.ProtocolVersion
	}
	if o.LoggerName == "" {
		o.LoggerName = from.LoggerName
	}
	if o.Instructions == "" {
		o.Instructions = from.Instructions
	}
	if o.Transport.Type == "" {
		o.Transport.Type = from.Transport.Type
	}
	if o.Transport.Host == "" {
		o.Transport.Host = from.Transport.Host
	}
	if o.Transport.Port == 0 {
		o.Transport.Port = from.Transport.Port
	}
	if len(o.Transport.Origins) == 0 {
		o.Transport.Origins = from.Transport.Origins
	}
}

// Apply overrides profile settings with configured values.
func (o *Options) Apply(profile *bridge.Profile) {
	if o.Program != "" {
		profile.Program = o.Program
	}
	if o.Timeout != 0 {
		profile.Timeout = o.Timeout
	}
	if o.Unbounded {
		profile.Unbounded = true
	}
	if o.EmptyOutput != "" {
		profile.EmptyOutput = o.EmptyOutput
	}
}

// Address returns the HTTP listen address.
func (t *ServerTransport) Address() string {
	host := t.Host
	if host == "" {
		host = defaultHost
	}
	port := t.Port
	if port == 0 {
		port = defaultPort
	}
	return fmt.Sprintf("%v:%v", host, port)
}

// LoadOptions reads YAML options from a local path or any afs supported URL.
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	fs := afs.New()
	URL = url.Normalize(URL, file.Scheme)
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}
