package evdev

import "unsafe"

const (
	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14
	iocDirBits  = 2

	iocNone  = 0
	iocWrite = 1
	iocRead  = 2

	iocReadEBase  = (iocRead << iocDirShift) | ('E' << iocTypeShift)
	iocWriteEBase = (iocWrite << iocDirShift) | ('E' << iocTypeShift)

	iocUBase          = 'U' << iocTypeShift
	iocWriteUBase     = (iocWrite << iocDirShift) | iocUBase
	iocReadWriteUBase = ((iocRead | iocWrite) << iocDirShift) | iocUBase
)

const (
	eviocgversion = iocReadEBase | (0x01 << iocNRShift) | (unsafe.Sizeof(int32(0)) << iocSizeShift)
	eviocgid      = iocReadEBase | (0x02 << iocNRShift) | (unsafe.Sizeof(InputID{}) << iocSizeShift)
	eviocgrep     = iocReadEBase | (0x03 << iocNRShift) | (unsafe.Sizeof([2]uint32{}) << iocSizeShift)
	eviocsrep     = iocWriteEBase | (0x03 << iocNRShift) | (unsafe.Sizeof([2]uint32{}) << iocSizeShift)
)

const (
	eviocgnameBase = iocReadEBase | ((iota + 0x06) << iocNRShift)
	eviocgphysBase
	eviocguniqBase
	eviocgpropBase
)

const (
	eviocgkeyBase = iocReadEBase | ((0x18 + iota) << iocNRShift)
	eviocgledBase
	eviocgsndBase
	eviocgswBase
)

const (
	eviocsff      = iocWriteEBase | (0x80 << iocNRShift) | (EffectSize << iocSizeShift)
	eviocrmff     = iocWriteEBase | (0x81 << iocNRShift) | (unsafe.Sizeof(int32(0)) << iocSizeShift)
	eviocgeffects = iocReadEBase | (0x84 << iocNRShift) | (unsafe.Sizeof(int32(0)) << iocSizeShift)
	eviocgrab     = iocWriteEBase | (0x90 << iocNRShift) | (unsafe.Sizeof(int32(0)) << iocSizeShift)
)

func eviocgname(length uintptr) uintptr {
	return eviocgnameBase | (length << iocSizeShift)
}

func eviocgphys(length uintptr) uintptr {
	return eviocgphysBase | (length << iocSizeShift)
}

func eviocguniq(length uintptr) uintptr {
	return eviocguniqBase | (length << iocSizeShift)
}

func eviocgprop(length uintptr) uintptr {
	return eviocgpropBase | (length << iocSizeShift)
}

func eviocgkey(length uintptr) uintptr {
	return eviocgkeyBase | (length << iocSizeShift)
}

func eviocgled(length uintptr) uintptr {
	return eviocgledBase | (length << iocSizeShift)
}

func eviocgsnd(length uintptr) uintptr {
	return eviocgsndBase | (length << iocSizeShift)
}

func eviocgsw(length uintptr) uintptr {
	return eviocgswBase | (length << iocSizeShift)
}

func eviocgbit(ev, length uintptr) uintptr {
	return iocReadEBase | ((0x20 + ev) << iocNRShift) | (length << iocSizeShift)
}

func eviocgabs(code uint16) uintptr {
	return iocReadEBase | ((0x40 + uintptr(code)) << iocNRShift) | (unsafe.Sizeof(AbsInfo{}) << iocSizeShift)
}

func eviocsabs(code uint16) uintptr {
	return iocWriteEBase | ((0xc0 + uintptr(code)) << iocNRShift) | (unsafe.Sizeof(AbsInfo{}) << iocSizeShift)
}

const (
	ffUploadSize = 8 + 2*EffectSize
	ffEraseSize  = 12

	uinputMaxNameSize = 80
	uinputAbsSize     = 64
)

const (
	uiDevCreate  = iocUBase | (1 << iocNRShift)
	uiDevDestroy = iocUBase | (2 << iocNRShift)
)

const (
	uiSetEvBit = iocWriteUBase | ((100 + iota) << iocNRShift) | (unsafe.Sizeof(int32(0)) << iocSizeShift)
	uiSetKeyBit
	uiSetRelBit
	uiSetAbsBit
	uiSetMscBit
	uiSetLedBit
	uiSetSndBit
	uiSetFfBit
	_ // UI_SET_PHYS takes a string pointer; unused here.
	uiSetSwBit
	uiSetPropBit
)

const (
	uiBeginFFUpload = iocReadWriteUBase | (200 << iocNRShift) | (ffUploadSize << iocSizeShift)
	uiEndFFUpload   = iocWriteUBase | (201 << iocNRShift) | (ffUploadSize << iocSizeShift)
	uiBeginFFErase  = iocReadWriteUBase | (202 << iocNRShift) | (ffEraseSize << iocSizeShift)
	uiEndFFErase    = iocWriteUBase | (203 << iocNRShift) | (ffEraseSize << iocSizeShift)
)

const (
	evCount   = 0x1F + 1
	keyCount  = 0x2FF + 1
	relCount  = 0x0F + 1
	absCount  = 0x3F + 1
	swCount   = 0x10 + 1
	mscCount  = 0x07 + 1
	ledCount  = 0x0F + 1
	repCount  = 0x01 + 1
	sndCount  = 0x07 + 1
	ffCount   = 0x7F + 1
	propCount = 0x1F + 1
)
