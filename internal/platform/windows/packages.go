//go:build windows

package windows

import (
	"fmt"
	"syscall"
	"unsafe"

	sys "golang.org/x/sys/windows"
)

// packages implements platform.Packages through the shell
// IApplicationActivationManager, which is how packaged (AppX) applications
// are activated by identity.
type packages struct{}

var (
	clsidApplicationActivationManager = sys.GUID{
		Data1: 0x45ba127d, Data2: 0x10a8, Data3: 0x46ea,
		Data4: [8]byte{0x8a, 0xb7, 0x56, 0xea, 0x90, 0x78, 0x94, 0x3c},
	}
	iidIApplicationActivationManager = sys.GUID{
		Data1: 0x2e941141, Data2: 0x7f97, Data3: 0x4756,
		Data4: [8]byte{0xba, 0x1d, 0x9d, 0xec, 0xde, 0x89, 0x4a, 0x3d},
	}
)

const (
	coinitApartmentThreaded = 0x2
	clsctxLocalServer       = 0x4
)

var (
	ole32            = sys.NewLazySystemDLL("ole32.dll")
	procCoInitEx     = ole32.NewProc("CoInitializeEx")
	procCoUninit     = ole32.NewProc("CoUninitialize")
	procCoCreateInst = ole32.NewProc("CoCreateInstance")
)

// activationManagerVtbl mirrors the IApplicationActivationManager layout:
// the three IUnknown slots followed by ActivateApplication,
// ActivateForFile, and ActivateForProtocol.
type activationManagerVtbl struct {
	queryInterface      uintptr
	addRef              uintptr
	release             uintptr
	activateApplication uintptr
	activateForFile     uintptr
	activateForProtocol uintptr
}

type activationManager struct {
	vtbl *activationManagerVtbl
}

func (packages) Activate(identity string, args string) (int, error) {
	hr, _, _ := procCoInitEx.Call(0, coinitApartmentThreaded)
	// S_FALSE (1) means COM was already initialized on this thread.
	if hr != 0 && hr != 1 {
		return 0, fmt.Errorf("activate %s: CoInitializeEx failed: %#x", identity, hr)
	}
	defer procCoUninit.Call()

	var mgr *activationManager
	hr, _, _ = procCoCreateInst.Call(
		uintptr(unsafe.Pointer(&clsidApplicationActivationManager)),
		0,
		clsctxLocalServer,
		uintptr(unsafe.Pointer(&iidIApplicationActivationManager)),
		uintptr(unsafe.Pointer(&mgr)),
	)
	if hr != 0 {
		return 0, fmt.Errorf("activate %s: CoCreateInstance failed: %#x", identity, hr)
	}
	defer syscall.SyscallN(mgr.vtbl.release, uintptr(unsafe.Pointer(mgr)))

	id, err := sys.UTF16PtrFromString(identity)
	if err != nil {
		return 0, err
	}
	argp, err := sys.UTF16PtrFromString(args)
	if err != nil {
		return 0, err
	}

	var pid uint32
	hr, _, _ = syscall.SyscallN(mgr.vtbl.activateApplication,
		uintptr(unsafe.Pointer(mgr)),
		uintptr(unsafe.Pointer(id)),
		uintptr(unsafe.Pointer(argp)),
		0, // AO_NONE
		uintptr(unsafe.Pointer(&pid)),
	)
	if hr != 0 {
		return 0, fmt.Errorf("activate %s: ActivateApplication failed: %#x", identity, hr)
	}
	return int(pid), nil
}
