package hostsfile

import (
	"os"

	fileutil "github.com/projectdiscovery/utils/file"
	osutils "github.com/projectdiscovery/utils/os"
)

const (
	DefaultUnixPath    = "/etc/hosts"
	DefaultWindowsPath = `C:\windows\system32\drivers\etc\hosts`
)

// Platform describes the target system.
type Platform interface {
	IsWindows() bool
}

// OSPlatform is the system the process runs on.
type OSPlatform struct{}

func (OSPlatform) IsWindows() bool {
	return osutils.IsWindows()
}

// DefaultPath returns the hosts file location for platform.
func DefaultPath(platform Platform) string {
	if platform.IsWindows() {
		return DefaultWindowsPath
	}
	return DefaultUnixPath
}

// FileSystem gives access to the files of the target system.
type FileSystem interface {
	// IsFile reports whether path exists and is a regular file
	IsFile(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSFileSystem reads from the local disk.
type OSFileSystem struct{}

func (OSFileSystem) IsFile(path string) bool {
	return fileutil.FileExists(path)
}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
