package provision

import (
	"os"
	"strings"

	ssh_config "github.com/kevinburke/ssh_config"

	"gcssh/internal/errors"
)

// ConnectionInfo is the workflow's final product: everything the operator
// needs to reach the VM.
type ConnectionInfo struct {
	Instance string // VM name
	Zone     string // derived zone name
	IP       string // external IP
	User     string // local operator username
	Command  string // canonical "ssh user@ip" invocation
	Alias    string // existing ~/.ssh/config alias for the IP, if any
}

// ReportConnection derives the connection command for the selected instance.
// An instance with no external IP is an expected terminal condition, not a
// generic failure.
func (s *Service) ReportConnection(inst *Instance) (*ConnectionInfo, error) {
	ip, ok := inst.ExternalIP()
	if !ok {
		return nil, errors.New(errors.ErrNoExternalIP,
			"VM "+inst.Name+" does not have an external IP address",
			"Attach an external address or pick a different instance.")
	}

	username, err := s.Username()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO,
			"Couldn't determine your local username",
			"Set the USER environment variable.")
	}

	return &ConnectionInfo{
		Instance: inst.Name,
		Zone:     inst.Zone(),
		IP:       ip,
		User:     username,
		Command:  "ssh " + username + "@" + ip,
		Alias:    s.configAliasFor(ip),
	}, nil
}

// configAliasFor scans the operator's ssh client config for a host alias
// whose HostName already points at ip. Purely informational; any failure
// yields "".
func (s *Service) configAliasFor(ip string) string {
	if s.SSHConfigPath == "" {
		return ""
	}
	f, err := os.Open(s.SSHConfigPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return ""
	}

	for _, host := range cfg.Hosts {
		for _, node := range host.Nodes {
			kv, ok := node.(*ssh_config.KV)
			if !ok || !strings.EqualFold(kv.Key, "HostName") || kv.Value != ip {
				continue
			}
			for _, pattern := range host.Patterns {
				name := pattern.String()
				if name != "" && !strings.ContainsAny(name, "*?!") {
					return name
				}
			}
		}
	}
	return ""
}
