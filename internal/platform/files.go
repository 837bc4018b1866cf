package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	AndroidAM       = "am"
)

// Android storage locations
const (
	AndroidPicturesDir = "/sdcard/Pictures"
	androidPicturesURI = "content://com.android.externalstorage.documents/root/primary/Pictures"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// commandRunner runs external commands; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// IsAndroid reports whether the app runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	if IsAndroid() {
		// External storage so exported photos show up in the Gallery
		return AndroidPicturesDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Pictures"), nil
}

// OpenFolderInManager opens a directory in the system file manager
func OpenFolderInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	goos := runtime.GOOS
	if IsAndroid() {
		goos = OSAndroid
	}

	switch goos {
	case OSDarwin:
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	case OSAndroid:
		return openFolderAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openFolderLinux tries xdg-open, then the common file managers
func openFolderLinux(dir string) error {
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// openFolderAndroid opens the folder through the documents UI
func openFolderAndroid(dir string) error {
	if err := commandRunner(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", androidPicturesURI); err == nil {
		return nil
	}

	if err := commandRunner(AndroidAM, "start", "-a", "android.intent.action.VIEW", "-d", "file://"+dir); err == nil {
		return nil
	}

	return fmt.Errorf("failed to open folder in manager: no suitable file manager found")
}

// NotifyMediaScanner tells the Android media scanner about a new image so it
// appears in the Gallery. It is a no-op elsewhere.
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}
	return commandRunner(AndroidAM, "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)
}
