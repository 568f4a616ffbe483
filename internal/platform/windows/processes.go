//go:build windows

package windows

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
	"unsafe"

	sys "golang.org/x/sys/windows"

	"github.com/mj1618/deskbar/internal/platform"
)

// processes implements platform.Processes with user32 window enumeration
// and toolhelp process snapshots.
type processes struct{}

var (
	user32                       = sys.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindow                = user32.NewProc("GetWindow")
	procGetWindowTextLength      = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procShowWindow               = user32.NewProc("ShowWindow")
	procIsIconic                 = user32.NewProc("IsIconic")
)

const (
	gwOwner   = 4
	swRestore = 9
)

func (processes) Windowed() ([]platform.ProcessInfo, error) {
	pids := make(map[uint32]bool)
	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if !isMainVisibleWindow(hwnd) {
			return 1 // continue enumeration
		}
		var pid uint32
		procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
		if pid != 0 {
			pids[pid] = true
		}
		return 1
	})
	if r, _, err := procEnumWindows.Call(cb, 0); r == 0 {
		return nil, fmt.Errorf("enum windows: %w", err)
	}

	var infos []platform.ProcessInfo
	for pid := range pids {
		info, err := queryProcess(pid)
		if err != nil {
			continue // process may have exited
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Started.After(infos[j].Started)
	})
	return infos, nil
}

func (processes) Activate(pid int) error {
	var target uintptr
	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if !isMainVisibleWindow(hwnd) {
			return 1
		}
		var wpid uint32
		procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&wpid)))
		if int(wpid) == pid {
			target = hwnd
			return 0 // stop enumeration
		}
		return 1
	})
	procEnumWindows.Call(cb, 0)
	if target == 0 {
		return fmt.Errorf("no visible window for pid %d", pid)
	}

	if iconic, _, _ := procIsIconic.Call(target); iconic != 0 {
		procShowWindow.Call(target, swRestore)
	}
	if r, _, _ := procSetForegroundWindow.Call(target); r == 0 {
		return fmt.Errorf("failed to bring pid %d to the foreground", pid)
	}
	return nil
}

func (processes) Running(imageName string) (bool, error) {
	want := strings.ToLower(strings.TrimSuffix(imageName, filepath.Ext(imageName)))

	snap, err := sys.CreateToolhelp32Snapshot(sys.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return false, fmt.Errorf("process snapshot: %w", err)
	}
	defer sys.CloseHandle(snap)

	var entry sys.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = sys.Process32First(snap, &entry); err == nil; err = sys.Process32Next(snap, &entry) {
		name := sys.UTF16ToString(entry.ExeFile[:])
		name = strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		if name == want {
			return true, nil
		}
	}
	return false, nil
}

// isMainVisibleWindow reports whether hwnd is a visible, unowned,
// titled top-level window.
func isMainVisibleWindow(hwnd uintptr) bool {
	if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
		return false
	}
	if owner, _, _ := procGetWindow.Call(hwnd, gwOwner); owner != 0 {
		return false
	}
	titleLen, _, _ := procGetWindowTextLength.Call(hwnd)
	return titleLen > 0
}

func queryProcess(pid uint32) (platform.ProcessInfo, error) {
	h, err := sys.OpenProcess(sys.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return platform.ProcessInfo{}, err
	}
	defer sys.CloseHandle(h)

	var buf [sys.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := sys.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return platform.ProcessInfo{}, err
	}
	name := filepath.Base(sys.UTF16ToString(buf[:size]))

	var created, exited, kernel, user sys.Filetime
	if err := sys.GetProcessTimes(h, &created, &exited, &kernel, &user); err != nil {
		return platform.ProcessInfo{}, err
	}

	return platform.ProcessInfo{
		PID:     int(pid),
		Name:    name,
		Started: time.Unix(0, created.Nanoseconds()),
	}, nil
}
