package evdev

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DevicesFile lists the kernel's input devices.
const DevicesFile = "/proc/bus/input/devices"

// DeviceInfo is one block of DevicesFile.
type DeviceInfo struct {
	Name     string
	Phys     string
	Path     string
	Handlers []string
	Keyboard bool
	Mouse    bool
}

// ParseDevices reads the DevicesFile format. Devices without an event
// handler are dropped.
func ParseDevices(r io.Reader) ([]DeviceInfo, error) {
	var (
		out []DeviceInfo
		cur DeviceInfo
	)

	flush := func() {
		if cur.Path != "" {
			out = append(out, cur)
		}
		cur = DeviceInfo{}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "N: Name="):
			cur.Name = strings.Trim(strings.TrimPrefix(line, "N: Name="), `"`)
		case strings.HasPrefix(line, "P: Phys="):
			cur.Phys = strings.TrimPrefix(line, "P: Phys=")
		case strings.HasPrefix(line, "H: Handlers="):
			cur.Handlers = strings.Fields(strings.TrimPrefix(line, "H: Handlers="))
			for _, h := range cur.Handlers {
				switch {
				case strings.HasPrefix(h, "event"):
					cur.Path = "/dev/input/" + h
				case h == "kbd":
					cur.Keyboard = true
				case strings.HasPrefix(h, "mouse"):
					cur.Mouse = true
				}
			}
		case strings.HasPrefix(line, "B: REL="):
			if strings.TrimPrefix(line, "B: REL=") != "0" {
				cur.Mouse = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// Discover returns the event device paths to read. Keyboards are always
// included, mice only when mice is set. Devices named exclude are skipped so
// the hook never reads its own virtual device. Links under
// /dev/input/by-id are resolved and merged.
func Discover(devicesFile string, mice bool, exclude string) ([]string, error) {
	if devicesFile == "" {
		devicesFile = DevicesFile
	}
	f, err := os.Open(devicesFile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	infos, err := ParseDevices(f)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, info := range Select(infos, mice, exclude) {
		add(info.Path)
	}

	patterns := []string{"/dev/input/by-id/*-kbd"}
	if mice {
		patterns = append(patterns, "/dev/input/by-id/*-mouse")
	}
	for _, pattern := range patterns {
		matches, _ := filepath.Glob(pattern)
		for _, m := range matches {
			if resolved, err := filepath.EvalSymlinks(m); err == nil {
				add(resolved)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Select filters parsed devices the way Discover does.
func Select(infos []DeviceInfo, mice bool, exclude string) []DeviceInfo {
	var out []DeviceInfo
	for _, info := range infos {
		if exclude != "" && info.Name == exclude {
			continue
		}
		if info.Keyboard || (mice && info.Mouse) {
			out = append(out, info)
		}
	}
	return out
}

// DeviceName is the name of the virtual device keyremap creates. Discovery
// skips it.
const DeviceName = "keyremap virtual device"
