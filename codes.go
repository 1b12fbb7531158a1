// Package evdev models Linux input-device events, device capabilities,
// and force-feedback effects, and converts between their in-memory
// representation and the fixed-layout records exchanged with the kernel
// evdev/uinput interface.
package evdev

// EventType is the wire type of an input event, as reported in the raw
// event record.
type EventType uint16

const (
	EvSyn EventType = iota
	EvKey
	EvRel
	EvAbs
	EvMsc
	EvSw
)

const (
	EvLed EventType = 0x11 + iota
	EvSnd
)

const (
	EvRep EventType = 0x14 + iota
	EvFf
	EvPwr
	EvFfStatus
)

// EvUinput is the event type used by the uinput force-feedback
// upload/erase handshake.
const EvUinput EventType = 0x0101

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Category identifies one group of event codes. Raw code values collide
// across categories, so a code is only meaningful together with its
// category.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryKey
	CategoryButton
	CategorySynch
	CategoryRelativeAxis
	CategoryAbsoluteAxis
	CategoryMisc
	CategorySwitch
	CategoryLED
	CategorySound
	CategoryAutorepeat
	CategoryForceFeedback
	CategoryUInput
)

// UnknownCodeName is returned by Name for codes absent from a
// category's table.
const UnknownCodeName = "UNKNOWN"

func (c Category) String() string {
	switch c {
	case CategoryKey:
		return "KEY"
	case CategoryButton:
		return "BTN"
	case CategorySynch:
		return "SYN"
	case CategoryRelativeAxis:
		return "REL"
	case CategoryAbsoluteAxis:
		return "ABS"
	case CategoryMisc:
		return "MSC"
	case CategorySwitch:
		return "SW"
	case CategoryLED:
		return "LED"
	case CategorySound:
		return "SND"
	case CategoryAutorepeat:
		return "REP"
	case CategoryForceFeedback:
		return "FF"
	case CategoryUInput:
		return "UINPUT"
	default:
		return "UNCATEGORIZED"
	}
}

// EventType returns the wire event type that natively carries this
// category's codes. Key and Button share EvKey.
func (c Category) EventType() EventType {
	switch c {
	case CategoryKey, CategoryButton:
		return EvKey
	case CategorySynch:
		return EvSyn
	case CategoryRelativeAxis:
		return EvRel
	case CategoryAbsoluteAxis:
		return EvAbs
	case CategoryMisc:
		return EvMsc
	case CategorySwitch:
		return EvSw
	case CategoryLED:
		return EvLed
	case CategorySound:
		return EvSnd
	case CategoryAutorepeat:
		return EvRep
	case CategoryForceFeedback:
		return EvFfStatus
	case CategoryUInput:
		return EvUinput
	default:
		return EvPwr
	}
}

// Codes returns the category's code table. The returned map is shared
// and must not be modified.
func (c Category) Codes() map[uint16]string {
	switch c {
	case CategoryKey:
		return keyNames
	case CategoryButton:
		return buttonNames
	case CategorySynch:
		return synchNames
	case CategoryRelativeAxis:
		return relNames
	case CategoryAbsoluteAxis:
		return absNames
	case CategoryMisc:
		return miscNames
	case CategorySwitch:
		return switchNames
	case CategoryLED:
		return ledNames
	case CategorySound:
		return soundNames
	case CategoryAutorepeat:
		return repNames
	case CategoryForceFeedback:
		return ffNames
	case CategoryUInput:
		return uinputNames
	default:
		return nil
	}
}

// Name returns the symbolic name of code within the category, or
// UnknownCodeName if the table does not list it.
func (c Category) Name(code uint16) string {
	if name, ok := c.Codes()[code]; ok {
		return name
	}
	return UnknownCodeName
}

func (c Category) recognizes(code uint16) bool {
	if c == CategoryKey {
		_, key := keyNames[code]
		_, btn := buttonNames[code]
		return key || btn
	}
	_, ok := c.Codes()[code]
	return ok
}

var eventTypeNames = map[EventType]string{
	EvSyn:      "EV_SYN",
	EvKey:      "EV_KEY",
	EvRel:      "EV_REL",
	EvAbs:      "EV_ABS",
	EvMsc:      "EV_MSC",
	EvSw:       "EV_SW",
	EvLed:      "EV_LED",
	EvSnd:      "EV_SND",
	EvRep:      "EV_REP",
	EvFf:       "EV_FF",
	EvPwr:      "EV_PWR",
	EvFfStatus: "EV_FF_STATUS",
	EvUinput:   "EV_UINPUT",
}

// BusName returns the symbolic name of a bus type from the device
// identity record.
func BusName(bus uint16) string {
	if name, ok := busNames[bus]; ok {
		return name
	}
	return UnknownCodeName
}

// PropName returns the symbolic name of an input property.
func PropName(prop uint16) string {
	if name, ok := propNames[prop]; ok {
		return name
	}
	return UnknownCodeName
}

var busNames = map[uint16]string{
	0x01: "BUS_PCI",
	0x02: "BUS_ISAPNP",
	0x03: "BUS_USB",
	0x04: "BUS_HIL",
	0x05: "BUS_BLUETOOTH",
	0x06: "BUS_VIRTUAL",
	0x10: "BUS_ISA",
	0x11: "BUS_I8042",
	0x12: "BUS_XTKBD",
	0x13: "BUS_RS232",
	0x14: "BUS_GAMEPORT",
	0x15: "BUS_PARPORT",
	0x16: "BUS_AMIGA",
	0x17: "BUS_ADB",
	0x18: "BUS_I2C",
	0x19: "BUS_HOST",
	0x1a: "BUS_GSC",
	0x1b: "BUS_ATARI",
	0x1c: "BUS_SPI",
}

var propNames = map[uint16]string{
	0x00: "INPUT_PROP_POINTER",
	0x01: "INPUT_PROP_DIRECT",
	0x02: "INPUT_PROP_BUTTONPAD",
	0x03: "INPUT_PROP_SEMI_MT",
	0x04: "INPUT_PROP_TOPBUTTONPAD",
	0x05: "INPUT_PROP_POINTING_STICK",
	0x06: "INPUT_PROP_ACCELEROMETER",
}

var synchNames = map[uint16]string{
	0x00: "SYN_REPORT",
	0x01: "SYN_CONFIG",
	0x02: "SYN_MT_REPORT",
	0x03: "SYN_DROPPED",
}

var relNames = map[uint16]string{
	0x00: "REL_X",
	0x01: "REL_Y",
	0x02: "REL_Z",
	0x03: "REL_RX",
	0x04: "REL_RY",
	0x05: "REL_RZ",
	0x06: "REL_HWHEEL",
	0x07: "REL_DIAL",
	0x08: "REL_WHEEL",
	0x09: "REL_MISC",
	0x0b: "REL_WHEEL_HI_RES",
	0x0c: "REL_HWHEEL_HI_RES",
}

var absNames = map[uint16]string{
	0x00: "ABS_X",
	0x01: "ABS_Y",
	0x02: "ABS_Z",
	0x03: "ABS_RX",
	0x04: "ABS_RY",
	0x05: "ABS_RZ",
	0x06: "ABS_THROTTLE",
	0x07: "ABS_RUDDER",
	0x08: "ABS_WHEEL",
	0x09: "ABS_GAS",
	0x0a: "ABS_BRAKE",
	0x10: "ABS_HAT0X",
	0x11: "ABS_HAT0Y",
	0x12: "ABS_HAT1X",
	0x13: "ABS_HAT1Y",
	0x14: "ABS_HAT2X",
	0x15: "ABS_HAT2Y",
	0x16: "ABS_HAT3X",
	0x17: "ABS_HAT3Y",
	0x18: "ABS_PRESSURE",
	0x19: "ABS_DISTANCE",
	0x1a: "ABS_TILT_X",
	0x1b: "ABS_TILT_Y",
	0x1c: "ABS_TOOL_WIDTH",
	0x20: "ABS_VOLUME",
	0x21: "ABS_PROFILE",
	0x28: "ABS_MISC",
	0x2f: "ABS_MT_SLOT",
	0x30: "ABS_MT_TOUCH_MAJOR",
	0x31: "ABS_MT_TOUCH_MINOR",
	0x32: "ABS_MT_WIDTH_MAJOR",
	0x33: "ABS_MT_WIDTH_MINOR",
	0x34: "ABS_MT_ORIENTATION",
	0x35: "ABS_MT_POSITION_X",
	0x36: "ABS_MT_POSITION_Y",
	0x37: "ABS_MT_TOOL_TYPE",
	0x38: "ABS_MT_BLOB_ID",
	0x39: "ABS_MT_TRACKING_ID",
	0x3a: "ABS_MT_PRESSURE",
	0x3b: "ABS_MT_DISTANCE",
	0x3c: "ABS_MT_TOOL_X",
	0x3d: "ABS_MT_TOOL_Y",
}

var miscNames = map[uint16]string{
	0x00: "MSC_SERIAL",
	0x01: "MSC_PULSELED",
	0x02: "MSC_GESTURE",
	0x03: "MSC_RAW",
	0x04: "MSC_SCAN",
	0x05: "MSC_TIMESTAMP",
}

var switchNames = map[uint16]string{
	0x00: "SW_LID",
	0x01: "SW_TABLET_MODE",
	0x02: "SW_HEADPHONE_INSERT",
	0x03: "SW_RFKILL_ALL",
	0x04: "SW_MICROPHONE_INSERT",
	0x05: "SW_DOCK",
	0x06: "SW_LINEOUT_INSERT",
	0x07: "SW_JACK_PHYSICAL_INSERT",
	0x08: "SW_VIDEOOUT_INSERT",
	0x09: "SW_CAMERA_LENS_COVER",
	0x0a: "SW_KEYPAD_SLIDE",
	0x0b: "SW_FRONT_PROXIMITY",
	0x0c: "SW_ROTATE_LOCK",
	0x0d: "SW_LINEIN_INSERT",
	0x0e: "SW_MUTE_DEVICE",
	0x0f: "SW_PEN_INSERTED",
	0x10: "SW_MACHINE_COVER",
}

var ledNames = map[uint16]string{
	0x00: "LED_NUML",
	0x01: "LED_CAPSL",
	0x02: "LED_SCROLLL",
	0x03: "LED_COMPOSE",
	0x04: "LED_KANA",
	0x05: "LED_SLEEP",
	0x06: "LED_SUSPEND",
	0x07: "LED_MUTE",
	0x08: "LED_MISC",
	0x09: "LED_MAIL",
	0x0a: "LED_CHARGING",
}

var soundNames = map[uint16]string{
	0x00: "SND_CLICK",
	0x01: "SND_BELL",
	0x02: "SND_TONE",
}

var repNames = map[uint16]string{
	0x00: "REP_DELAY",
	0x01: "REP_PERIOD",
}

// ffNames covers both the playback status codes reported via
// EV_FF_STATUS and the effect/waveform/control codes used as EV_FF
// event codes and effect type tags.
var ffNames = map[uint16]string{
	0x00: "FF_STATUS_STOPPED",
	0x01: "FF_STATUS_PLAYING",
	0x50: "FF_RUMBLE",
	0x51: "FF_PERIODIC",
	0x52: "FF_CONSTANT",
	0x53: "FF_SPRING",
	0x54: "FF_FRICTION",
	0x55: "FF_DAMPER",
	0x56: "FF_INERTIA",
	0x57: "FF_RAMP",
	0x58: "FF_SQUARE",
	0x59: "FF_TRIANGLE",
	0x5a: "FF_SINE",
	0x5b: "FF_SAW_UP",
	0x5c: "FF_SAW_DOWN",
	0x5d: "FF_CUSTOM",
	0x60: "FF_GAIN",
	0x61: "FF_AUTOCENTER",
}

var uinputNames = map[uint16]string{
	0x01: "UI_FF_UPLOAD",
	0x02: "UI_FF_ERASE",
}

var keyNames = map[uint16]string{
	0:   "KEY_RESERVED",
	1:   "KEY_ESC",
	2:   "KEY_1",
	3:   "KEY_2",
	4:   "KEY_3",
	5:   "KEY_4",
	6:   "KEY_5",
	7:   "KEY_6",
	8:   "KEY_7",
	9:   "KEY_8",
	10:  "KEY_9",
	11:  "KEY_0",
	12:  "KEY_MINUS",
	13:  "KEY_EQUAL",
	14:  "KEY_BACKSPACE",
	15:  "KEY_TAB",
	16:  "KEY_Q",
	17:  "KEY_W",
	18:  "KEY_E",
	19:  "KEY_R",
	20:  "KEY_T",
	21:  "KEY_Y",
	22:  "KEY_U",
	23:  "KEY_I",
	24:  "KEY_O",
	25:  "KEY_P",
	26:  "KEY_LEFTBRACE",
	27:  "KEY_RIGHTBRACE",
	28:  "KEY_ENTER",
	29:  "KEY_LEFTCTRL",
	30:  "KEY_A",
	31:  "KEY_S",
	32:  "KEY_D",
	33:  "KEY_F",
	34:  "KEY_G",
	35:  "KEY_H",
	36:  "KEY_J",
	37:  "KEY_K",
	38:  "KEY_L",
	39:  "KEY_SEMICOLON",
	40:  "KEY_APOSTROPHE",
	41:  "KEY_GRAVE",
	42:  "KEY_LEFTSHIFT",
	43:  "KEY_BACKSLASH",
	44:  "KEY_Z",
	45:  "KEY_X",
	46:  "KEY_C",
	47:  "KEY_V",
	48:  "KEY_B",
	49:  "KEY_N",
	50:  "KEY_M",
	51:  "KEY_COMMA",
	52:  "KEY_DOT",
	53:  "KEY_SLASH",
	54:  "KEY_RIGHTSHIFT",
	55:  "KEY_KPASTERISK",
	56:  "KEY_LEFTALT",
	57:  "KEY_SPACE",
	58:  "KEY_CAPSLOCK",
	59:  "KEY_F1",
	60:  "KEY_F2",
	61:  "KEY_F3",
	62:  "KEY_F4",
	63:  "KEY_F5",
	64:  "KEY_F6",
	65:  "KEY_F7",
	66:  "KEY_F8",
	67:  "KEY_F9",
	68:  "KEY_F10",
	69:  "KEY_NUMLOCK",
	70:  "KEY_SCROLLLOCK",
	71:  "KEY_KP7",
	72:  "KEY_KP8",
	73:  "KEY_KP9",
	74:  "KEY_KPMINUS",
	75:  "KEY_KP4",
	76:  "KEY_KP5",
	77:  "KEY_KP6",
	78:  "KEY_KPPLUS",
	79:  "KEY_KP1",
	80:  "KEY_KP2",
	81:  "KEY_KP3",
	82:  "KEY_KP0",
	83:  "KEY_KPDOT",
	85:  "KEY_ZENKAKUHANKAKU",
	86:  "KEY_102ND",
	87:  "KEY_F11",
	88:  "KEY_F12",
	89:  "KEY_RO",
	90:  "KEY_KATAKANA",
	91:  "KEY_HIRAGANA",
	92:  "KEY_HENKAN",
	93:  "KEY_KATAKANAHIRAGANA",
	94:  "KEY_MUHENKAN",
	95:  "KEY_KPJPCOMMA",
	96:  "KEY_KPENTER",
	97:  "KEY_RIGHTCTRL",
	98:  "KEY_KPSLASH",
	99:  "KEY_SYSRQ",
	100: "KEY_RIGHTALT",
	101: "KEY_LINEFEED",
	102: "KEY_HOME",
	103: "KEY_UP",
	104: "KEY_PAGEUP",
	105: "KEY_LEFT",
	106: "KEY_RIGHT",
	107: "KEY_END",
	108: "KEY_DOWN",
	109: "KEY_PAGEDOWN",
	110: "KEY_INSERT",
	111: "KEY_DELETE",
	112: "KEY_MACRO",
	113: "KEY_MUTE",
	114: "KEY_VOLUMEDOWN",
	115: "KEY_VOLUMEUP",
	116: "KEY_POWER",
	117: "KEY_KPEQUAL",
	118: "KEY_KPPLUSMINUS",
	119: "KEY_PAUSE",
	120: "KEY_SCALE",
	121: "KEY_KPCOMMA",
	122: "KEY_HANGEUL",
	123: "KEY_HANJA",
	124: "KEY_YEN",
	125: "KEY_LEFTMETA",
	126: "KEY_RIGHTMETA",
	127: "KEY_COMPOSE",
	128: "KEY_STOP",
	129: "KEY_AGAIN",
	130: "KEY_PROPS",
	131: "KEY_UNDO",
	132: "KEY_FRONT",
	133: "KEY_COPY",
	134: "KEY_OPEN",
	135: "KEY_PASTE",
	136: "KEY_FIND",
	137: "KEY_CUT",
	138: "KEY_HELP",
	139: "KEY_MENU",
	140: "KEY_CALC",
	141: "KEY_SETUP",
	142: "KEY_SLEEP",
	143: "KEY_WAKEUP",
	144: "KEY_FILE",
	145: "KEY_SENDFILE",
	146: "KEY_DELETEFILE",
	147: "KEY_XFER",
	148: "KEY_PROG1",
	149: "KEY_PROG2",
	150: "KEY_WWW",
	151: "KEY_MSDOS",
	152: "KEY_COFFEE",
	153: "KEY_ROTATE_DISPLAY",
	154: "KEY_CYCLEWINDOWS",
	155: "KEY_MAIL",
	156: "KEY_BOOKMARKS",
	157: "KEY_COMPUTER",
	158: "KEY_BACK",
	159: "KEY_FORWARD",
	160: "KEY_CLOSECD",
	161: "KEY_EJECTCD",
	162: "KEY_EJECTCLOSECD",
	163: "KEY_NEXTSONG",
	164: "KEY_PLAYPAUSE",
	165: "KEY_PREVIOUSSONG",
	166: "KEY_STOPCD",
	167: "KEY_RECORD",
	168: "KEY_REWIND",
	169: "KEY_PHONE",
	170: "KEY_ISO",
	171: "KEY_CONFIG",
	172: "KEY_HOMEPAGE",
	173: "KEY_REFRESH",
	174: "KEY_EXIT",
	175: "KEY_MOVE",
	176: "KEY_EDIT",
	177: "KEY_SCROLLUP",
	178: "KEY_SCROLLDOWN",
	179: "KEY_KPLEFTPAREN",
	180: "KEY_KPRIGHTPAREN",
	181: "KEY_NEW",
	182: "KEY_REDO",
	183: "KEY_F13",
	184: "KEY_F14",
	185: "KEY_F15",
	186: "KEY_F16",
	187: "KEY_F17",
	188: "KEY_F18",
	189: "KEY_F19",
	190: "KEY_F20",
	191: "KEY_F21",
	192: "KEY_F22",
	193: "KEY_F23",
	194: "KEY_F24",
	200: "KEY_PLAYCD",
	201: "KEY_PAUSECD",
	202: "KEY_PROG3",
	203: "KEY_PROG4",
	204: "KEY_ALL_APPLICATIONS",
	205: "KEY_SUSPEND",
	206: "KEY_CLOSE",
	207: "KEY_PLAY",
	208: "KEY_FASTFORWARD",
	209: "KEY_BASSBOOST",
	210: "KEY_PRINT",
	211: "KEY_HP",
	212: "KEY_CAMERA",
	213: "KEY_SOUND",
	214: "KEY_QUESTION",
	215: "KEY_EMAIL",
	216: "KEY_CHAT",
	217: "KEY_SEARCH",
	218: "KEY_CONNECT",
	219: "KEY_FINANCE",
	220: "KEY_SPORT",
	221: "KEY_SHOP",
	222: "KEY_ALTERASE",
	223: "KEY_CANCEL",
	224: "KEY_BRIGHTNESSDOWN",
	225: "KEY_BRIGHTNESSUP",
	226: "KEY_MEDIA",
	227: "KEY_SWITCHVIDEOMODE",
	228: "KEY_KBDILLUMTOGGLE",
	229: "KEY_KBDILLUMDOWN",
	230: "KEY_KBDILLUMUP",
	231: "KEY_SEND",
	232: "KEY_REPLY",
	233: "KEY_FORWARDMAIL",
	234: "KEY_SAVE",
	235: "KEY_DOCUMENTS",
	236: "KEY_BATTERY",
	237: "KEY_BLUETOOTH",
	238: "KEY_WLAN",
	239: "KEY_UWB",
	240: "KEY_UNKNOWN",
	241: "KEY_VIDEO_NEXT",
	242: "KEY_VIDEO_PREV",
	243: "KEY_BRIGHTNESS_CYCLE",
	244: "KEY_BRIGHTNESS_AUTO",
	245: "KEY_DISPLAY_OFF",
	246: "KEY_WWAN",
	247: "KEY_RFKILL",
	248: "KEY_MICMUTE",
}

var buttonNames = map[uint16]string{
	0x100: "BTN_0",
	0x101: "BTN_1",
	0x102: "BTN_2",
	0x103: "BTN_3",
	0x104: "BTN_4",
	0x105: "BTN_5",
	0x106: "BTN_6",
	0x107: "BTN_7",
	0x108: "BTN_8",
	0x109: "BTN_9",
	0x110: "BTN_LEFT",
	0x111: "BTN_RIGHT",
	0x112: "BTN_MIDDLE",
	0x113: "BTN_SIDE",
	0x114: "BTN_EXTRA",
	0x115: "BTN_FORWARD",
	0x116: "BTN_BACK",
	0x117: "BTN_TASK",
	0x120: "BTN_TRIGGER",
	0x121: "BTN_THUMB",
	0x122: "BTN_THUMB2",
	0x123: "BTN_TOP",
	0x124: "BTN_TOP2",
	0x125: "BTN_PINKIE",
	0x126: "BTN_BASE",
	0x127: "BTN_BASE2",
	0x128: "BTN_BASE3",
	0x129: "BTN_BASE4",
	0x12a: "BTN_BASE5",
	0x12b: "BTN_BASE6",
	0x12f: "BTN_DEAD",
	0x130: "BTN_SOUTH",
	0x131: "BTN_EAST",
	0x132: "BTN_C",
	0x133: "BTN_NORTH",
	0x134: "BTN_WEST",
	0x135: "BTN_Z",
	0x136: "BTN_TL",
	0x137: "BTN_TR",
	0x138: "BTN_TL2",
	0x139: "BTN_TR2",
	0x13a: "BTN_SELECT",
	0x13b: "BTN_START",
	0x13c: "BTN_MODE",
	0x13d: "BTN_THUMBL",
	0x13e: "BTN_THUMBR",
	0x140: "BTN_TOOL_PEN",
	0x141: "BTN_TOOL_RUBBER",
	0x142: "BTN_TOOL_BRUSH",
	0x143: "BTN_TOOL_PENCIL",
	0x144: "BTN_TOOL_AIRBRUSH",
	0x145: "BTN_TOOL_FINGER",
	0x146: "BTN_TOOL_MOUSE",
	0x147: "BTN_TOOL_LENS",
	0x148: "BTN_TOOL_QUINTTAP",
	0x149: "BTN_STYLUS3",
	0x14a: "BTN_TOUCH",
	0x14b: "BTN_STYLUS",
	0x14c: "BTN_STYLUS2",
	0x14d: "BTN_TOOL_DOUBLETAP",
	0x14e: "BTN_TOOL_TRIPLETAP",
	0x14f: "BTN_TOOL_QUADTAP",
	0x150: "BTN_GEAR_DOWN",
	0x151: "BTN_GEAR_UP",
	0x220: "BTN_DPAD_UP",
	0x221: "BTN_DPAD_DOWN",
	0x222: "BTN_DPAD_LEFT",
	0x223: "BTN_DPAD_RIGHT",
	0x2c0: "BTN_TRIGGER_HAPPY1",
	0x2c1: "BTN_TRIGGER_HAPPY2",
	0x2c2: "BTN_TRIGGER_HAPPY3",
	0x2c3: "BTN_TRIGGER_HAPPY4",
}
