// pkg/source/sftp.go

package source

import (
	"context"
	"io"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type sftpTarget struct {
	addr     string
	user     string
	password string
	path     string
}

func parseSFTP(uri string) (*sftpTarget, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "sftp" || u.Host == "" || u.Path == "" {
		return nil, errors.Errorf("invalid sftp URI: %s", uri)
	}
	t := &sftpTarget{path: u.Path}
	t.addr = u.Host
	if u.Port() == "" {
		t.addr = net.JoinHostPort(u.Hostname(), "22")
	}
	if u.User != nil {
		t.user = u.User.Username()
		t.password, _ = u.User.Password()
	}
	if t.user == "" {
		t.user = os.Getenv("USER")
	}
	if t.password == "" {
		t.password = os.Getenv("SFTP_PASSWORD")
	}
	return t, nil
}

// Redact hides the password of an sftp URI, other inputs are unchanged.
func Redact(uri string) string {
	if !strings.HasPrefix(uri, "sftp://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "sftp://"
	}
	return u.Redacted()
}

func homePath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, elem...)...)
}

func (t *sftpTarget) config() (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod
	if t.password != "" {
		auth = append(auth, ssh.Password(t.password))
	}
	keyPath := os.Getenv("SFTP_KEY")
	if keyPath == "" {
		keyPath = homePath(".ssh", "id_rsa")
	}
	if pem, err := os.ReadFile(keyPath); err == nil {
		signer, err := ssh.ParsePrivateKey(pem)
		if err != nil {
			return nil, errors.Wrapf(err, "parse private key %s", keyPath)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if len(auth) == 0 {
		return nil, errors.Errorf("no credentials for %s@%s: set SFTP_PASSWORD or SFTP_KEY", t.user, t.addr)
	}

	knownHosts := os.Getenv("SFTP_KNOWN_HOSTS")
	if knownHosts == "" {
		knownHosts = homePath(".ssh", "known_hosts")
	}
	hostKey, err := knownhosts.New(knownHosts)
	if err != nil {
		return nil, errors.Wrapf(err, "load known hosts %s", knownHosts)
	}
	return &ssh.ClientConfig{
		User:            t.user,
		Auth:            auth,
		HostKeyCallback: hostKey,
		Timeout:         time.Second * 30,
	}, nil
}

type sftpReader struct {
	*sftp.File
	client *sftp.Client
	conn   *ssh.Client
}

func (r *sftpReader) Close() error {
	_ = r.File.Close()
	_ = r.client.Close()
	return r.conn.Close()
}

func openSFTP(ctx context.Context, uri string) (io.ReadCloser, int64, error) {
	t, err := parseSFTP(uri)
	if err != nil {
		return nil, 0, err
	}
	conf, err := t.config()
	if err != nil {
		return nil, 0, err
	}
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return nil, 0, err
	}
	c, chans, reqs, err := ssh.NewClientConn(nc, t.addr, conf)
	if err != nil {
		_ = nc.Close()
		return nil, 0, errors.Wrapf(err, "ssh %s", t.addr)
	}
	conn := ssh.NewClient(c, chans, reqs)
	client, err := sftp.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, 0, errors.Wrapf(err, "sftp %s", t.addr)
	}
	f, err := client.Open(t.path)
	if err != nil {
		_ = client.Close()
		_ = conn.Close()
		return nil, 0, errors.Wrapf(err, "open %s on %s", t.path, t.addr)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		_ = client.Close()
		_ = conn.Close()
		return nil, 0, err
	}
	logger.Infof("reading %s (%d bytes) from %s", t.path, fi.Size(), t.addr)
	return &sftpReader{f, client, conn}, fi.Size(), nil
}
