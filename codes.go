package evdev

import "fmt"

// Constants transcribed from linux/input.h and linux/input-event-codes.h.

const (
	// Protocol version.
	EV_VERSION = 0x010001

	// IDs.
	ID_BUS     = 0
	ID_VENDOR  = 1
	ID_PRODUCT = 2
	ID_VERSION = 3

	BUS_PCI       = 0x01
	BUS_ISAPNP    = 0x02
	BUS_USB       = 0x03
	BUS_HIL       = 0x04
	BUS_BLUETOOTH = 0x05
	BUS_VIRTUAL   = 0x06

	BUS_ISA         = 0x10
	BUS_I8042       = 0x11
	BUS_XTKBD       = 0x12
	BUS_RS232       = 0x13
	BUS_GAMEPORT    = 0x14
	BUS_PARPORT     = 0x15
	BUS_AMIGA       = 0x16
	BUS_ADB         = 0x17
	BUS_I2C         = 0x18
	BUS_HOST        = 0x19
	BUS_GSC         = 0x1A
	BUS_ATARI       = 0x1B
	BUS_SPI         = 0x1C
	BUS_RMI         = 0x1D
	BUS_CEC         = 0x1E
	BUS_INTEL_ISHTP = 0x1F
)

// Event types.
const (
	EV_SYN       EvType = 0x00
	EV_KEY       EvType = 0x01
	EV_REL       EvType = 0x02
	EV_ABS       EvType = 0x03
	EV_MSC       EvType = 0x04
	EV_SW        EvType = 0x05
	EV_LED       EvType = 0x11
	EV_SND       EvType = 0x12
	EV_REP       EvType = 0x14
	EV_FF        EvType = 0x15
	EV_PWR       EvType = 0x16
	EV_FF_STATUS EvType = 0x17
	EV_MAX       EvType = 0x1f
	EV_CNT              = int(EV_MAX) + 1

	// EV_UINPUT comes from linux/uinput.h, not input-event-codes.h. The
	// kernel uses it on uinput descriptors for force-feedback upload/erase
	// requests.
	EV_UINPUT EvType = 0x0101
)

// Synchronization events.
const (
	SYN_REPORT    EvCode = 0
	SYN_CONFIG    EvCode = 1
	SYN_MT_REPORT EvCode = 2
	SYN_DROPPED   EvCode = 3
	SYN_MAX       EvCode = 0xf
	SYN_CNT              = int(SYN_MAX) + 1
)

// Keys and buttons.
const (
	KEY_RESERVED   EvCode = 0
	KEY_ESC        EvCode = 1
	KEY_1          EvCode = 2
	KEY_2          EvCode = 3
	KEY_3          EvCode = 4
	KEY_4          EvCode = 5
	KEY_5          EvCode = 6
	KEY_6          EvCode = 7
	KEY_7          EvCode = 8
	KEY_8          EvCode = 9
	KEY_9          EvCode = 10
	KEY_0          EvCode = 11
	KEY_MINUS      EvCode = 12
	KEY_EQUAL      EvCode = 13
	KEY_BACKSPACE  EvCode = 14
	KEY_TAB        EvCode = 15
	KEY_Q          EvCode = 16
	KEY_W          EvCode = 17
	KEY_E          EvCode = 18
	KEY_R          EvCode = 19
	KEY_T          EvCode = 20
	KEY_Y          EvCode = 21
	KEY_U          EvCode = 22
	KEY_I          EvCode = 23
	KEY_O          EvCode = 24
	KEY_P          EvCode = 25
	KEY_LEFTBRACE  EvCode = 26
	KEY_RIGHTBRACE EvCode = 27
	KEY_ENTER      EvCode = 28
	KEY_LEFTCTRL   EvCode = 29
	KEY_A          EvCode = 30
	KEY_S          EvCode = 31
	KEY_D          EvCode = 32
	KEY_F          EvCode = 33
	KEY_G          EvCode = 34
	KEY_H          EvCode = 35
	KEY_J          EvCode = 36
	KEY_K          EvCode = 37
	KEY_L          EvCode = 38
	KEY_SEMICOLON  EvCode = 39
	KEY_APOSTROPHE EvCode = 40
	KEY_GRAVE      EvCode = 41
	KEY_LEFTSHIFT  EvCode = 42
	KEY_BACKSLASH  EvCode = 43
	KEY_Z          EvCode = 44
	KEY_X          EvCode = 45
	KEY_C          EvCode = 46
	KEY_V          EvCode = 47
	KEY_B          EvCode = 48
	KEY_N          EvCode = 49
	KEY_M          EvCode = 50
	KEY_COMMA      EvCode = 51
	KEY_DOT        EvCode = 52
	KEY_SLASH      EvCode = 53
	KEY_RIGHTSHIFT EvCode = 54
	KEY_KPASTERISK EvCode = 55
	KEY_LEFTALT    EvCode = 56
	KEY_SPACE      EvCode = 57
	KEY_CAPSLOCK   EvCode = 58
	KEY_F1         EvCode = 59
	KEY_F2         EvCode = 60
	KEY_F3         EvCode = 61
	KEY_F4         EvCode = 62
	KEY_F5         EvCode = 63
	KEY_F6         EvCode = 64
	KEY_F7         EvCode = 65
	KEY_F8         EvCode = 66
	KEY_F9         EvCode = 67
	KEY_F10        EvCode = 68
	KEY_NUMLOCK    EvCode = 69
	KEY_SCROLLLOCK EvCode = 70
	KEY_KP7        EvCode = 71
	KEY_KP8        EvCode = 72
	KEY_KP9        EvCode = 73
	KEY_KPMINUS    EvCode = 74
	KEY_KP4        EvCode = 75
	KEY_KP5        EvCode = 76
	KEY_KP6        EvCode = 77
	KEY_KPPLUS     EvCode = 78
	KEY_KP1        EvCode = 79
	KEY_KP2        EvCode = 80
	KEY_KP3        EvCode = 81
	KEY_KP0        EvCode = 82
	KEY_KPDOT      EvCode = 83

	KEY_ZENKAKUHANKAKU   EvCode = 85
	KEY_102ND            EvCode = 86
	KEY_F11              EvCode = 87
	KEY_F12              EvCode = 88
	KEY_RO               EvCode = 89
	KEY_KATAKANA         EvCode = 90
	KEY_HIRAGANA         EvCode = 91
	KEY_HENKAN           EvCode = 92
	KEY_KATAKANAHIRAGANA EvCode = 93
	KEY_MUHENKAN         EvCode = 94
	KEY_KPJPCOMMA        EvCode = 95
	KEY_KPENTER          EvCode = 96
	KEY_RIGHTCTRL        EvCode = 97
	KEY_KPSLASH          EvCode = 98
	KEY_SYSRQ            EvCode = 99
	KEY_RIGHTALT         EvCode = 100
	KEY_LINEFEED         EvCode = 101
	KEY_HOME             EvCode = 102
	KEY_UP               EvCode = 103
	KEY_PAGEUP           EvCode = 104
	KEY_LEFT             EvCode = 105
	KEY_RIGHT            EvCode = 106
	KEY_END              EvCode = 107
	KEY_DOWN             EvCode = 108
	KEY_PAGEDOWN         EvCode = 109
	KEY_INSERT           EvCode = 110
	KEY_DELETE           EvCode = 111
	KEY_MACRO            EvCode = 112
	KEY_MUTE             EvCode = 113
	KEY_VOLUMEDOWN       EvCode = 114
	KEY_VOLUMEUP         EvCode = 115
	KEY_POWER            EvCode = 116
	KEY_KPEQUAL          EvCode = 117
	KEY_KPPLUSMINUS      EvCode = 118
	KEY_PAUSE            EvCode = 119
	KEY_SCALE            EvCode = 120
	KEY_KPCOMMA          EvCode = 121
	KEY_HANGEUL          EvCode = 122
	KEY_HANJA            EvCode = 123
	KEY_YEN              EvCode = 124
	KEY_LEFTMETA         EvCode = 125
	KEY_RIGHTMETA        EvCode = 126
	KEY_COMPOSE          EvCode = 127

	KEY_STOP           EvCode = 128
	KEY_AGAIN          EvCode = 129
	KEY_PROPS          EvCode = 130
	KEY_UNDO           EvCode = 131
	KEY_FRONT          EvCode = 132
	KEY_COPY           EvCode = 133
	KEY_OPEN           EvCode = 134
	KEY_PASTE          EvCode = 135
	KEY_FIND           EvCode = 136
	KEY_CUT            EvCode = 137
	KEY_HELP           EvCode = 138
	KEY_MENU           EvCode = 139
	KEY_CALC           EvCode = 140
	KEY_SETUP          EvCode = 141
	KEY_SLEEP          EvCode = 142
	KEY_WAKEUP         EvCode = 143
	KEY_FILE           EvCode = 144
	KEY_SENDFILE       EvCode = 145
	KEY_DELETEFILE     EvCode = 146
	KEY_XFER           EvCode = 147
	KEY_PROG1          EvCode = 148
	KEY_PROG2          EvCode = 149
	KEY_WWW            EvCode = 150
	KEY_MSDOS          EvCode = 151
	KEY_SCREENLOCK     EvCode = 152
	KEY_ROTATE_DISPLAY EvCode = 153
	KEY_CYCLEWINDOWS   EvCode = 154
	KEY_MAIL           EvCode = 155
	KEY_BOOKMARKS      EvCode = 156
	KEY_COMPUTER       EvCode = 157
	KEY_BACK           EvCode = 158
	KEY_FORWARD        EvCode = 159
	KEY_CLOSECD        EvCode = 160
	KEY_EJECTCD        EvCode = 161
	KEY_EJECTCLOSECD   EvCode = 162
	KEY_NEXTSONG       EvCode = 163
	KEY_PLAYPAUSE      EvCode = 164
	KEY_PREVIOUSSONG   EvCode = 165
	KEY_STOPCD         EvCode = 166
	KEY_RECORD         EvCode = 167
	KEY_REWIND         EvCode = 168
	KEY_PHONE          EvCode = 169
	KEY_ISO            EvCode = 170
	KEY_CONFIG         EvCode = 171
	KEY_HOMEPAGE       EvCode = 172
	KEY_REFRESH        EvCode = 173
	KEY_EXIT           EvCode = 174
	KEY_MOVE           EvCode = 175
	KEY_EDIT           EvCode = 176
	KEY_SCROLLUP       EvCode = 177
	KEY_SCROLLDOWN     EvCode = 178
	KEY_KPLEFTPAREN    EvCode = 179
	KEY_KPRIGHTPAREN   EvCode = 180
	KEY_NEW            EvCode = 181
	KEY_REDO           EvCode = 182
	KEY_F13            EvCode = 183
	KEY_F14            EvCode = 184
	KEY_F15            EvCode = 185
	KEY_F16            EvCode = 186
	KEY_F17            EvCode = 187
	KEY_F18            EvCode = 188
	KEY_F19            EvCode = 189
	KEY_F20            EvCode = 190
	KEY_F21            EvCode = 191
	KEY_F22            EvCode = 192
	KEY_F23            EvCode = 193
	KEY_F24            EvCode = 194

	KEY_PLAYCD         EvCode = 200
	KEY_PAUSECD        EvCode = 201
	KEY_PROG3          EvCode = 202
	KEY_PROG4          EvCode = 203
	KEY_DASHBOARD      EvCode = 204
	KEY_SUSPEND        EvCode = 205
	KEY_CLOSE          EvCode = 206
	KEY_PLAY           EvCode = 207
	KEY_FASTFORWARD    EvCode = 208
	KEY_BASSBOOST      EvCode = 209
	KEY_PRINT          EvCode = 210
	KEY_HP             EvCode = 211
	KEY_CAMERA         EvCode = 212
	KEY_SOUND          EvCode = 213
	KEY_QUESTION       EvCode = 214
	KEY_EMAIL          EvCode = 215
	KEY_CHAT           EvCode = 216
	KEY_SEARCH         EvCode = 217
	KEY_CONNECT        EvCode = 218
	KEY_FINANCE        EvCode = 219
	KEY_SPORT          EvCode = 220
	KEY_SHOP           EvCode = 221
	KEY_ALTERASE       EvCode = 222
	KEY_CANCEL         EvCode = 223
	KEY_BRIGHTNESSDOWN EvCode = 224
	KEY_BRIGHTNESSUP   EvCode = 225
	KEY_MEDIA          EvCode = 226
	KEY_SWITCHVIDEOMODE EvCode = 227
	KEY_KBDILLUMTOGGLE EvCode = 228
	KEY_KBDILLUMDOWN   EvCode = 229
	KEY_KBDILLUMUP     EvCode = 230
	KEY_SEND           EvCode = 231
	KEY_REPLY          EvCode = 232
	KEY_FORWARDMAIL    EvCode = 233
	KEY_SAVE           EvCode = 234
	KEY_DOCUMENTS      EvCode = 235
	KEY_BATTERY        EvCode = 236
	KEY_BLUETOOTH      EvCode = 237
	KEY_WLAN           EvCode = 238
	KEY_UWB            EvCode = 239
	KEY_UNKNOWN        EvCode = 240
	KEY_VIDEO_NEXT     EvCode = 241
	KEY_VIDEO_PREV     EvCode = 242
	KEY_BRIGHTNESS_CYCLE EvCode = 243
	KEY_BRIGHTNESS_AUTO  EvCode = 244
	KEY_DISPLAY_OFF      EvCode = 245
	KEY_WWAN             EvCode = 246
	KEY_RFKILL           EvCode = 247
	KEY_MICMUTE          EvCode = 248

	BTN_MISC EvCode = 0x100
	BTN_0    EvCode = 0x100
	BTN_1    EvCode = 0x101
	BTN_2    EvCode = 0x102
	BTN_3    EvCode = 0x103
	BTN_4    EvCode = 0x104
	BTN_5    EvCode = 0x105
	BTN_6    EvCode = 0x106
	BTN_7    EvCode = 0x107
	BTN_8    EvCode = 0x108
	BTN_9    EvCode = 0x109

	BTN_MOUSE   EvCode = 0x110
	BTN_LEFT    EvCode = 0x110
	BTN_RIGHT   EvCode = 0x111
	BTN_MIDDLE  EvCode = 0x112
	BTN_SIDE    EvCode = 0x113
	BTN_EXTRA   EvCode = 0x114
	BTN_FORWARD EvCode = 0x115
	BTN_BACK    EvCode = 0x116
	BTN_TASK    EvCode = 0x117

	BTN_JOYSTICK EvCode = 0x120
	BTN_TRIGGER  EvCode = 0x120
	BTN_THUMB    EvCode = 0x121
	BTN_THUMB2   EvCode = 0x122
	BTN_TOP      EvCode = 0x123
	BTN_TOP2     EvCode = 0x124
	BTN_PINKIE   EvCode = 0x125
	BTN_BASE     EvCode = 0x126
	BTN_BASE2    EvCode = 0x127
	BTN_BASE3    EvCode = 0x128
	BTN_BASE4    EvCode = 0x129
	BTN_BASE5    EvCode = 0x12a
	BTN_BASE6    EvCode = 0x12b
	BTN_DEAD     EvCode = 0x12f

	BTN_GAMEPAD EvCode = 0x130
	BTN_SOUTH   EvCode = 0x130
	BTN_A       EvCode = 0x130
	BTN_EAST    EvCode = 0x131
	BTN_B       EvCode = 0x131
	BTN_C       EvCode = 0x132
	BTN_NORTH   EvCode = 0x133
	BTN_X       EvCode = 0x133
	BTN_WEST    EvCode = 0x134
	BTN_Y       EvCode = 0x134
	BTN_Z       EvCode = 0x135
	BTN_TL      EvCode = 0x136
	BTN_TR      EvCode = 0x137
	BTN_TL2     EvCode = 0x138
	BTN_TR2     EvCode = 0x139
	BTN_SELECT  EvCode = 0x13a
	BTN_START   EvCode = 0x13b
	BTN_MODE    EvCode = 0x13c
	BTN_THUMBL  EvCode = 0x13d
	BTN_THUMBR  EvCode = 0x13e

	BTN_DIGI           EvCode = 0x140
	BTN_TOOL_PEN       EvCode = 0x140
	BTN_TOOL_RUBBER    EvCode = 0x141
	BTN_TOOL_BRUSH     EvCode = 0x142
	BTN_TOOL_PENCIL    EvCode = 0x143
	BTN_TOOL_AIRBRUSH  EvCode = 0x144
	BTN_TOOL_FINGER    EvCode = 0x145
	BTN_TOOL_MOUSE     EvCode = 0x146
	BTN_TOOL_LENS      EvCode = 0x147
	BTN_TOOL_QUINTTAP  EvCode = 0x148
	BTN_STYLUS3        EvCode = 0x149
	BTN_TOUCH          EvCode = 0x14a
	BTN_STYLUS         EvCode = 0x14b
	BTN_STYLUS2        EvCode = 0x14c
	BTN_TOOL_DOUBLETAP EvCode = 0x14d
	BTN_TOOL_TRIPLETAP EvCode = 0x14e
	BTN_TOOL_QUADTAP   EvCode = 0x14f

	BTN_WHEEL     EvCode = 0x150
	BTN_GEAR_DOWN EvCode = 0x150
	BTN_GEAR_UP   EvCode = 0x151

	BTN_DPAD_UP    EvCode = 0x220
	BTN_DPAD_DOWN  EvCode = 0x221
	BTN_DPAD_LEFT  EvCode = 0x222
	BTN_DPAD_RIGHT EvCode = 0x223

	BTN_TRIGGER_HAPPY  EvCode = 0x2c0
	BTN_TRIGGER_HAPPY1 EvCode = 0x2c0
	BTN_TRIGGER_HAPPY2 EvCode = 0x2c1
	BTN_TRIGGER_HAPPY3 EvCode = 0x2c2
	BTN_TRIGGER_HAPPY4 EvCode = 0x2c3

	KEY_MAX EvCode = 0x2ff
	KEY_CNT        = int(KEY_MAX) + 1
)

// Relative axes.
const (
	REL_X             EvCode = 0x00
	REL_Y             EvCode = 0x01
	REL_Z             EvCode = 0x02
	REL_RX            EvCode = 0x03
	REL_RY            EvCode = 0x04
	REL_RZ            EvCode = 0x05
	REL_HWHEEL        EvCode = 0x06
	REL_DIAL          EvCode = 0x07
	REL_WHEEL         EvCode = 0x08
	REL_MISC          EvCode = 0x09
	REL_RESERVED      EvCode = 0x0a
	REL_WHEEL_HI_RES  EvCode = 0x0b
	REL_HWHEEL_HI_RES EvCode = 0x0c
	REL_MAX           EvCode = 0x0f
	REL_CNT                  = int(REL_MAX) + 1
)

// Absolute axes.
const (
	ABS_X              EvCode = 0x00
	ABS_Y              EvCode = 0x01
	ABS_Z              EvCode = 0x02
	ABS_RX             EvCode = 0x03
	ABS_RY             EvCode = 0x04
	ABS_RZ             EvCode = 0x05
	ABS_THROTTLE       EvCode = 0x06
	ABS_RUDDER         EvCode = 0x07
	ABS_WHEEL          EvCode = 0x08
	ABS_GAS            EvCode = 0x09
	ABS_BRAKE          EvCode = 0x0a
	ABS_HAT0X          EvCode = 0x10
	ABS_HAT0Y          EvCode = 0x11
	ABS_HAT1X          EvCode = 0x12
	ABS_HAT1Y          EvCode = 0x13
	ABS_HAT2X          EvCode = 0x14
	ABS_HAT2Y          EvCode = 0x15
	ABS_HAT3X          EvCode = 0x16
	ABS_HAT3Y          EvCode = 0x17
	ABS_PRESSURE       EvCode = 0x18
	ABS_DISTANCE       EvCode = 0x19
	ABS_TILT_X         EvCode = 0x1a
	ABS_TILT_Y         EvCode = 0x1b
	ABS_TOOL_WIDTH     EvCode = 0x1c
	ABS_VOLUME         EvCode = 0x20
	ABS_PROFILE        EvCode = 0x21
	ABS_MISC           EvCode = 0x28
	ABS_RESERVED       EvCode = 0x2e
	ABS_MT_SLOT        EvCode = 0x2f
	ABS_MT_TOUCH_MAJOR EvCode = 0x30
	ABS_MT_TOUCH_MINOR EvCode = 0x31
	ABS_MT_WIDTH_MAJOR EvCode = 0x32
	ABS_MT_WIDTH_MINOR EvCode = 0x33
	ABS_MT_ORIENTATION EvCode = 0x34
	ABS_MT_POSITION_X  EvCode = 0x35
	ABS_MT_POSITION_Y  EvCode = 0x36
	ABS_MT_TOOL_TYPE   EvCode = 0x37
	ABS_MT_BLOB_ID     EvCode = 0x38
	ABS_MT_TRACKING_ID EvCode = 0x39
	ABS_MT_PRESSURE    EvCode = 0x3a
	ABS_MT_DISTANCE    EvCode = 0x3b
	ABS_MT_TOOL_X      EvCode = 0x3c
	ABS_MT_TOOL_Y      EvCode = 0x3d
	ABS_MAX            EvCode = 0x3f
	ABS_CNT                   = int(ABS_MAX) + 1
)

// Misc events.
const (
	MSC_SERIAL    EvCode = 0x00
	MSC_PULSELED  EvCode = 0x01
	MSC_GESTURE   EvCode = 0x02
	MSC_RAW       EvCode = 0x03
	MSC_SCAN      EvCode = 0x04
	MSC_TIMESTAMP EvCode = 0x05
	MSC_MAX       EvCode = 0x07
	MSC_CNT              = int(MSC_MAX) + 1
)

// LEDs.
const (
	LED_NUML     EvCode = 0x00
	LED_CAPSL    EvCode = 0x01
	LED_SCROLLL  EvCode = 0x02
	LED_COMPOSE  EvCode = 0x03
	LED_KANA     EvCode = 0x04
	LED_SLEEP    EvCode = 0x05
	LED_SUSPEND  EvCode = 0x06
	LED_MUTE     EvCode = 0x07
	LED_MISC     EvCode = 0x08
	LED_MAIL     EvCode = 0x09
	LED_CHARGING EvCode = 0x0a
	LED_MAX      EvCode = 0x0f
	LED_CNT             = int(LED_MAX) + 1
)

// Sounds.
const (
	SND_CLICK EvCode = 0x00
	SND_BELL  EvCode = 0x01
	SND_TONE  EvCode = 0x02
	SND_MAX   EvCode = 0x07
	SND_CNT          = int(SND_MAX) + 1
)

// Switch events.
const (
	SW_LID                  EvCode = 0x00
	SW_TABLET_MODE          EvCode = 0x01
	SW_HEADPHONE_INSERT     EvCode = 0x02
	SW_RFKILL_ALL           EvCode = 0x03
	SW_MICROPHONE_INSERT    EvCode = 0x04
	SW_DOCK                 EvCode = 0x05
	SW_LINEOUT_INSERT       EvCode = 0x06
	SW_JACK_PHYSICAL_INSERT EvCode = 0x07
	SW_VIDEOOUT_INSERT      EvCode = 0x08
	SW_CAMERA_LENS_COVER    EvCode = 0x09
	SW_KEYPAD_SLIDE         EvCode = 0x0a
	SW_FRONT_PROXIMITY      EvCode = 0x0b
	SW_ROTATE_LOCK          EvCode = 0x0c
	SW_LINEIN_INSERT        EvCode = 0x0d
	SW_MUTE_DEVICE          EvCode = 0x0e
	SW_PEN_INSERTED         EvCode = 0x0f
	SW_MACHINE_COVER        EvCode = 0x10
	SW_MAX                  EvCode = 0x10
	SW_CNT                         = int(SW_MAX) + 1
)

// Autorepeat values.
const (
	REP_DELAY  EvCode = 0x00
	REP_PERIOD EvCode = 0x01
	REP_MAX    EvCode = 0x01
	REP_CNT           = int(REP_MAX) + 1
)

// Force feedback effect types and properties.
const (
	FF_RUMBLE   EvCode = 0x50
	FF_PERIODIC EvCode = 0x51
	FF_CONSTANT EvCode = 0x52
	FF_SPRING   EvCode = 0x53
	FF_FRICTION EvCode = 0x54
	FF_DAMPER   EvCode = 0x55
	FF_INERTIA  EvCode = 0x56
	FF_RAMP     EvCode = 0x57

	FF_SQUARE   EvCode = 0x58
	FF_TRIANGLE EvCode = 0x59
	FF_SINE     EvCode = 0x5a
	FF_SAW_UP   EvCode = 0x5b
	FF_SAW_DOWN EvCode = 0x5c
	FF_CUSTOM   EvCode = 0x5d

	FF_GAIN       EvCode = 0x60
	FF_AUTOCENTER EvCode = 0x61

	FF_MAX EvCode = 0x7f
	FF_CNT        = int(FF_MAX) + 1

	FF_STATUS_STOPPED = 0x00
	FF_STATUS_PLAYING = 0x01
	FF_STATUS_MAX     = 0x01
)

// uinput force-feedback request codes (linux/uinput.h).
const (
	UI_FF_UPLOAD EvCode = 1
	UI_FF_ERASE  EvCode = 2
)

// Device properties.
const (
	INPUT_PROP_POINTER        EvProp = 0x00
	INPUT_PROP_DIRECT         EvProp = 0x01
	INPUT_PROP_BUTTONPAD      EvProp = 0x02
	INPUT_PROP_SEMI_MT        EvProp = 0x03
	INPUT_PROP_TOPBUTTONPAD   EvProp = 0x04
	INPUT_PROP_POINTING_STICK EvProp = 0x05
	INPUT_PROP_ACCELEROMETER  EvProp = 0x06
	INPUT_PROP_MAX            EvProp = 0x1f
	INPUT_PROP_CNT                   = int(INPUT_PROP_MAX) + 1
)

var EVToString = map[EvType]string{
	EV_SYN:       "EV_SYN",
	EV_KEY:       "EV_KEY",
	EV_REL:       "EV_REL",
	EV_ABS:       "EV_ABS",
	EV_MSC:       "EV_MSC",
	EV_SW:        "EV_SW",
	EV_LED:       "EV_LED",
	EV_SND:       "EV_SND",
	EV_REP:       "EV_REP",
	EV_FF:        "EV_FF",
	EV_PWR:       "EV_PWR",
	EV_FF_STATUS: "EV_FF_STATUS",
	EV_UINPUT:    "EV_UINPUT",
}

var SYNToString = map[EvCode]string{
	SYN_REPORT:    "SYN_REPORT",
	SYN_CONFIG:    "SYN_CONFIG",
	SYN_MT_REPORT: "SYN_MT_REPORT",
	SYN_DROPPED:   "SYN_DROPPED",
}

var RELToString = map[EvCode]string{
	REL_X:             "REL_X",
	REL_Y:             "REL_Y",
	REL_Z:             "REL_Z",
	REL_RX:            "REL_RX",
	REL_RY:            "REL_RY",
	REL_RZ:            "REL_RZ",
	REL_HWHEEL:        "REL_HWHEEL",
	REL_DIAL:          "REL_DIAL",
	REL_WHEEL:         "REL_WHEEL",
	REL_MISC:          "REL_MISC",
	REL_WHEEL_HI_RES:  "REL_WHEEL_HI_RES",
	REL_HWHEEL_HI_RES: "REL_HWHEEL_HI_RES",
}

var ABSToString = map[EvCode]string{
	ABS_X:              "ABS_X",
	ABS_Y:              "ABS_Y",
	ABS_Z:              "ABS_Z",
	ABS_RX:             "ABS_RX",
	ABS_RY:             "ABS_RY",
	ABS_RZ:             "ABS_RZ",
	ABS_THROTTLE:       "ABS_THROTTLE",
	ABS_RUDDER:         "ABS_RUDDER",
	ABS_WHEEL:          "ABS_WHEEL",
	ABS_GAS:            "ABS_GAS",
	ABS_BRAKE:          "ABS_BRAKE",
	ABS_HAT0X:          "ABS_HAT0X",
	ABS_HAT0Y:          "ABS_HAT0Y",
	ABS_HAT1X:          "ABS_HAT1X",
	ABS_HAT1Y:          "ABS_HAT1Y",
	ABS_HAT2X:          "ABS_HAT2X",
	ABS_HAT2Y:          "ABS_HAT2Y",
	ABS_HAT3X:          "ABS_HAT3X",
	ABS_HAT3Y:          "ABS_HAT3Y",
	ABS_PRESSURE:       "ABS_PRESSURE",
	ABS_DISTANCE:       "ABS_DISTANCE",
	ABS_TILT_X:         "ABS_TILT_X",
	ABS_TILT_Y:         "ABS_TILT_Y",
	ABS_TOOL_WIDTH:     "ABS_TOOL_WIDTH",
	ABS_VOLUME:         "ABS_VOLUME",
	ABS_PROFILE:        "ABS_PROFILE",
	ABS_MISC:           "ABS_MISC",
	ABS_MT_SLOT:        "ABS_MT_SLOT",
	ABS_MT_TOUCH_MAJOR: "ABS_MT_TOUCH_MAJOR",
	ABS_MT_TOUCH_MINOR: "ABS_MT_TOUCH_MINOR",
	ABS_MT_WIDTH_MAJOR: "ABS_MT_WIDTH_MAJOR",
	ABS_MT_WIDTH_MINOR: "ABS_MT_WIDTH_MINOR",
	ABS_MT_ORIENTATION: "ABS_MT_ORIENTATION",
	ABS_MT_POSITION_X:  "ABS_MT_POSITION_X",
	ABS_MT_POSITION_Y:  "ABS_MT_POSITION_Y",
	ABS_MT_TOOL_TYPE:   "ABS_MT_TOOL_TYPE",
	ABS_MT_BLOB_ID:     "ABS_MT_BLOB_ID",
	ABS_MT_TRACKING_ID: "ABS_MT_TRACKING_ID",
	ABS_MT_PRESSURE:    "ABS_MT_PRESSURE",
	ABS_MT_DISTANCE:    "ABS_MT_DISTANCE",
	ABS_MT_TOOL_X:      "ABS_MT_TOOL_X",
	ABS_MT_TOOL_Y:      "ABS_MT_TOOL_Y",
}

var MSCToString = map[EvCode]string{
	MSC_SERIAL:    "MSC_SERIAL",
	MSC_PULSELED:  "MSC_PULSELED",
	MSC_GESTURE:   "MSC_GESTURE",
	MSC_RAW:       "MSC_RAW",
	MSC_SCAN:      "MSC_SCAN",
	MSC_TIMESTAMP: "MSC_TIMESTAMP",
}

var LEDToString = map[EvCode]string{
	LED_NUML:     "LED_NUML",
	LED_CAPSL:    "LED_CAPSL",
	LED_SCROLLL:  "LED_SCROLLL",
	LED_COMPOSE:  "LED_COMPOSE",
	LED_KANA:     "LED_KANA",
	LED_SLEEP:    "LED_SLEEP",
	LED_SUSPEND:  "LED_SUSPEND",
	LED_MUTE:     "LED_MUTE",
	LED_MISC:     "LED_MISC",
	LED_MAIL:     "LED_MAIL",
	LED_CHARGING: "LED_CHARGING",
}

var SNDToString = map[EvCode]string{
	SND_CLICK: "SND_CLICK",
	SND_BELL:  "SND_BELL",
	SND_TONE:  "SND_TONE",
}

var SWToString = map[EvCode]string{
	SW_LID:                  "SW_LID",
	SW_TABLET_MODE:          "SW_TABLET_MODE",
	SW_HEADPHONE_INSERT:     "SW_HEADPHONE_INSERT",
	SW_RFKILL_ALL:           "SW_RFKILL_ALL",
	SW_MICROPHONE_INSERT:    "SW_MICROPHONE_INSERT",
	SW_DOCK:                 "SW_DOCK",
	SW_LINEOUT_INSERT:       "SW_LINEOUT_INSERT",
	SW_JACK_PHYSICAL_INSERT: "SW_JACK_PHYSICAL_INSERT",
	SW_VIDEOOUT_INSERT:      "SW_VIDEOOUT_INSERT",
	SW_CAMERA_LENS_COVER:    "SW_CAMERA_LENS_COVER",
	SW_KEYPAD_SLIDE:         "SW_KEYPAD_SLIDE",
	SW_FRONT_PROXIMITY:      "SW_FRONT_PROXIMITY",
	SW_ROTATE_LOCK:          "SW_ROTATE_LOCK",
	SW_LINEIN_INSERT:        "SW_LINEIN_INSERT",
	SW_MUTE_DEVICE:          "SW_MUTE_DEVICE",
	SW_PEN_INSERTED:         "SW_PEN_INSERTED",
	SW_MACHINE_COVER:        "SW_MACHINE_COVER",
}

var REPToString = map[EvCode]string{
	REP_DELAY:  "REP_DELAY",
	REP_PERIOD: "REP_PERIOD",
}

var FFToString = map[EvCode]string{
	FF_RUMBLE:     "FF_RUMBLE",
	FF_PERIODIC:   "FF_PERIODIC",
	FF_CONSTANT:   "FF_CONSTANT",
	FF_SPRING:     "FF_SPRING",
	FF_FRICTION:   "FF_FRICTION",
	FF_DAMPER:     "FF_DAMPER",
	FF_INERTIA:    "FF_INERTIA",
	FF_RAMP:       "FF_RAMP",
	FF_SQUARE:     "FF_SQUARE",
	FF_TRIANGLE:   "FF_TRIANGLE",
	FF_SINE:       "FF_SINE",
	FF_SAW_UP:     "FF_SAW_UP",
	FF_SAW_DOWN:   "FF_SAW_DOWN",
	FF_CUSTOM:     "FF_CUSTOM",
	FF_GAIN:       "FF_GAIN",
	FF_AUTOCENTER: "FF_AUTOCENTER",
}

var PROPToString = map[EvProp]string{
	INPUT_PROP_POINTER:        "INPUT_PROP_POINTER",
	INPUT_PROP_DIRECT:         "INPUT_PROP_DIRECT",
	INPUT_PROP_BUTTONPAD:      "INPUT_PROP_BUTTONPAD",
	INPUT_PROP_SEMI_MT:        "INPUT_PROP_SEMI_MT",
	INPUT_PROP_TOPBUTTONPAD:   "INPUT_PROP_TOPBUTTONPAD",
	INPUT_PROP_POINTING_STICK: "INPUT_PROP_POINTING_STICK",
	INPUT_PROP_ACCELEROMETER:  "INPUT_PROP_ACCELEROMETER",
}

var KEYToString = map[EvCode]string{}

// KEYFromString maps symbolic key names back to codes. Aliased constants
// (BTN_A/BTN_SOUTH etc.) resolve to the same code.
var KEYFromString = map[string]EvCode{}
var ABSFromString = map[string]EvCode{}
var RELFromString = map[string]EvCode{}
var EVFromString = map[string]EvType{}

var keyNames = []struct {
	code EvCode
	name string
}{
	{KEY_RESERVED, "KEY_RESERVED"}, {KEY_ESC, "KEY_ESC"}, {KEY_1, "KEY_1"},
	{KEY_2, "KEY_2"}, {KEY_3, "KEY_3"}, {KEY_4, "KEY_4"}, {KEY_5, "KEY_5"},
	{KEY_6, "KEY_6"}, {KEY_7, "KEY_7"}, {KEY_8, "KEY_8"}, {KEY_9, "KEY_9"},
	{KEY_0, "KEY_0"}, {KEY_MINUS, "KEY_MINUS"}, {KEY_EQUAL, "KEY_EQUAL"},
	{KEY_BACKSPACE, "KEY_BACKSPACE"}, {KEY_TAB, "KEY_TAB"}, {KEY_Q, "KEY_Q"},
	{KEY_W, "KEY_W"}, {KEY_E, "KEY_E"}, {KEY_R, "KEY_R"}, {KEY_T, "KEY_T"},
	{KEY_Y, "KEY_Y"}, {KEY_U, "KEY_U"}, {KEY_I, "KEY_I"}, {KEY_O, "KEY_O"},
	{KEY_P, "KEY_P"}, {KEY_LEFTBRACE, "KEY_LEFTBRACE"},
	{KEY_RIGHTBRACE, "KEY_RIGHTBRACE"}, {KEY_ENTER, "KEY_ENTER"},
	{KEY_LEFTCTRL, "KEY_LEFTCTRL"}, {KEY_A, "KEY_A"}, {KEY_S, "KEY_S"},
	{KEY_D, "KEY_D"}, {KEY_F, "KEY_F"}, {KEY_G, "KEY_G"}, {KEY_H, "KEY_H"},
	{KEY_J, "KEY_J"}, {KEY_K, "KEY_K"}, {KEY_L, "KEY_L"},
	{KEY_SEMICOLON, "KEY_SEMICOLON"}, {KEY_APOSTROPHE, "KEY_APOSTROPHE"},
	{KEY_GRAVE, "KEY_GRAVE"}, {KEY_LEFTSHIFT, "KEY_LEFTSHIFT"},
	{KEY_BACKSLASH, "KEY_BACKSLASH"}, {KEY_Z, "KEY_Z"}, {KEY_X, "KEY_X"},
	{KEY_C, "KEY_C"}, {KEY_V, "KEY_V"}, {KEY_B, "KEY_B"}, {KEY_N, "KEY_N"},
	{KEY_M, "KEY_M"}, {KEY_COMMA, "KEY_COMMA"}, {KEY_DOT, "KEY_DOT"},
	{KEY_SLASH, "KEY_SLASH"}, {KEY_RIGHTSHIFT, "KEY_RIGHTSHIFT"},
	{KEY_KPASTERISK, "KEY_KPASTERISK"}, {KEY_LEFTALT, "KEY_LEFTALT"},
	{KEY_SPACE, "KEY_SPACE"}, {KEY_CAPSLOCK, "KEY_CAPSLOCK"},
	{KEY_F1, "KEY_F1"}, {KEY_F2, "KEY_F2"}, {KEY_F3, "KEY_F3"},
	{KEY_F4, "KEY_F4"}, {KEY_F5, "KEY_F5"}, {KEY_F6, "KEY_F6"},
	{KEY_F7, "KEY_F7"}, {KEY_F8, "KEY_F8"}, {KEY_F9, "KEY_F9"},
	{KEY_F10, "KEY_F10"}, {KEY_NUMLOCK, "KEY_NUMLOCK"},
	{KEY_SCROLLLOCK, "KEY_SCROLLLOCK"}, {KEY_KP7, "KEY_KP7"},
	{KEY_KP8, "KEY_KP8"}, {KEY_KP9, "KEY_KP9"}, {KEY_KPMINUS, "KEY_KPMINUS"},
	{KEY_KP4, "KEY_KP4"}, {KEY_KP5, "KEY_KP5"}, {KEY_KP6, "KEY_KP6"},
	{KEY_KPPLUS, "KEY_KPPLUS"}, {KEY_KP1, "KEY_KP1"}, {KEY_KP2, "KEY_KP2"},
	{KEY_KP3, "KEY_KP3"}, {KEY_KP0, "KEY_KP0"}, {KEY_KPDOT, "KEY_KPDOT"},
	{KEY_ZENKAKUHANKAKU, "KEY_ZENKAKUHANKAKU"}, {KEY_102ND, "KEY_102ND"},
	{KEY_F11, "KEY_F11"}, {KEY_F12, "KEY_F12"}, {KEY_RO, "KEY_RO"},
	{KEY_KATAKANA, "KEY_KATAKANA"}, {KEY_HIRAGANA, "KEY_HIRAGANA"},
	{KEY_HENKAN, "KEY_HENKAN"}, {KEY_KATAKANAHIRAGANA, "KEY_KATAKANAHIRAGANA"},
	{KEY_MUHENKAN, "KEY_MUHENKAN"}, {KEY_KPJPCOMMA, "KEY_KPJPCOMMA"},
	{KEY_KPENTER, "KEY_KPENTER"}, {KEY_RIGHTCTRL, "KEY_RIGHTCTRL"},
	{KEY_KPSLASH, "KEY_KPSLASH"}, {KEY_SYSRQ, "KEY_SYSRQ"},
	{KEY_RIGHTALT, "KEY_RIGHTALT"}, {KEY_LINEFEED, "KEY_LINEFEED"},
	{KEY_HOME, "KEY_HOME"}, {KEY_UP, "KEY_UP"}, {KEY_PAGEUP, "KEY_PAGEUP"},
	{KEY_LEFT, "KEY_LEFT"}, {KEY_RIGHT, "KEY_RIGHT"}, {KEY_END, "KEY_END"},
	{KEY_DOWN, "KEY_DOWN"}, {KEY_PAGEDOWN, "KEY_PAGEDOWN"},
	{KEY_INSERT, "KEY_INSERT"}, {KEY_DELETE, "KEY_DELETE"},
	{KEY_MACRO, "KEY_MACRO"}, {KEY_MUTE, "KEY_MUTE"},
	{KEY_VOLUMEDOWN, "KEY_VOLUMEDOWN"}, {KEY_VOLUMEUP, "KEY_VOLUMEUP"},
	{KEY_POWER, "KEY_POWER"}, {KEY_KPEQUAL, "KEY_KPEQUAL"},
	{KEY_KPPLUSMINUS, "KEY_KPPLUSMINUS"}, {KEY_PAUSE, "KEY_PAUSE"},
	{KEY_SCALE, "KEY_SCALE"}, {KEY_KPCOMMA, "KEY_KPCOMMA"},
	{KEY_HANGEUL, "KEY_HANGEUL"}, {KEY_HANJA, "KEY_HANJA"},
	{KEY_YEN, "KEY_YEN"}, {KEY_LEFTMETA, "KEY_LEFTMETA"},
	{KEY_RIGHTMETA, "KEY_RIGHTMETA"}, {KEY_COMPOSE, "KEY_COMPOSE"},
	{KEY_STOP, "KEY_STOP"}, {KEY_AGAIN, "KEY_AGAIN"},
	{KEY_PROPS, "KEY_PROPS"}, {KEY_UNDO, "KEY_UNDO"},
	{KEY_FRONT, "KEY_FRONT"}, {KEY_COPY, "KEY_COPY"},
	{KEY_OPEN, "KEY_OPEN"}, {KEY_PASTE, "KEY_PASTE"},
	{KEY_FIND, "KEY_FIND"}, {KEY_CUT, "KEY_CUT"}, {KEY_HELP, "KEY_HELP"},
	{KEY_MENU, "KEY_MENU"}, {KEY_CALC, "KEY_CALC"}, {KEY_SETUP, "KEY_SETUP"},
	{KEY_SLEEP, "KEY_SLEEP"}, {KEY_WAKEUP, "KEY_WAKEUP"},
	{KEY_FILE, "KEY_FILE"}, {KEY_SENDFILE, "KEY_SENDFILE"},
	{KEY_DELETEFILE, "KEY_DELETEFILE"}, {KEY_XFER, "KEY_XFER"},
	{KEY_PROG1, "KEY_PROG1"}, {KEY_PROG2, "KEY_PROG2"}, {KEY_WWW, "KEY_WWW"},
	{KEY_MSDOS, "KEY_MSDOS"}, {KEY_SCREENLOCK, "KEY_SCREENLOCK"},
	{KEY_ROTATE_DISPLAY, "KEY_ROTATE_DISPLAY"},
	{KEY_CYCLEWINDOWS, "KEY_CYCLEWINDOWS"}, {KEY_MAIL, "KEY_MAIL"},
	{KEY_BOOKMARKS, "KEY_BOOKMARKS"}, {KEY_COMPUTER, "KEY_COMPUTER"},
	{KEY_BACK, "KEY_BACK"}, {KEY_FORWARD, "KEY_FORWARD"},
	{KEY_CLOSECD, "KEY_CLOSECD"}, {KEY_EJECTCD, "KEY_EJECTCD"},
	{KEY_EJECTCLOSECD, "KEY_EJECTCLOSECD"}, {KEY_NEXTSONG, "KEY_NEXTSONG"},
	{KEY_PLAYPAUSE, "KEY_PLAYPAUSE"}, {KEY_PREVIOUSSONG, "KEY_PREVIOUSSONG"},
	{KEY_STOPCD, "KEY_STOPCD"}, {KEY_RECORD, "KEY_RECORD"},
	{KEY_REWIND, "KEY_REWIND"}, {KEY_PHONE, "KEY_PHONE"},
	{KEY_ISO, "KEY_ISO"}, {KEY_CONFIG, "KEY_CONFIG"},
	{KEY_HOMEPAGE, "KEY_HOMEPAGE"}, {KEY_REFRESH, "KEY_REFRESH"},
	{KEY_EXIT, "KEY_EXIT"}, {KEY_MOVE, "KEY_MOVE"}, {KEY_EDIT, "KEY_EDIT"},
	{KEY_SCROLLUP, "KEY_SCROLLUP"}, {KEY_SCROLLDOWN, "KEY_SCROLLDOWN"},
	{KEY_KPLEFTPAREN, "KEY_KPLEFTPAREN"},
	{KEY_KPRIGHTPAREN, "KEY_KPRIGHTPAREN"}, {KEY_NEW, "KEY_NEW"},
	{KEY_REDO, "KEY_REDO"}, {KEY_F13, "KEY_F13"}, {KEY_F14, "KEY_F14"},
	{KEY_F15, "KEY_F15"}, {KEY_F16, "KEY_F16"}, {KEY_F17, "KEY_F17"},
	{KEY_F18, "KEY_F18"}, {KEY_F19, "KEY_F19"}, {KEY_F20, "KEY_F20"},
	{KEY_F21, "KEY_F21"}, {KEY_F22, "KEY_F22"}, {KEY_F23, "KEY_F23"},
	{KEY_F24, "KEY_F24"}, {KEY_PLAYCD, "KEY_PLAYCD"},
	{KEY_PAUSECD, "KEY_PAUSECD"}, {KEY_PROG3, "KEY_PROG3"},
	{KEY_PROG4, "KEY_PROG4"}, {KEY_DASHBOARD, "KEY_DASHBOARD"},
	{KEY_SUSPEND, "KEY_SUSPEND"}, {KEY_CLOSE, "KEY_CLOSE"},
	{KEY_PLAY, "KEY_PLAY"}, {KEY_FASTFORWARD, "KEY_FASTFORWARD"},
	{KEY_BASSBOOST, "KEY_BASSBOOST"}, {KEY_PRINT, "KEY_PRINT"},
	{KEY_HP, "KEY_HP"}, {KEY_CAMERA, "KEY_CAMERA"}, {KEY_SOUND, "KEY_SOUND"},
	{KEY_QUESTION, "KEY_QUESTION"}, {KEY_EMAIL, "KEY_EMAIL"},
	{KEY_CHAT, "KEY_CHAT"}, {KEY_SEARCH, "KEY_SEARCH"},
	{KEY_CONNECT, "KEY_CONNECT"}, {KEY_FINANCE, "KEY_FINANCE"},
	{KEY_SPORT, "KEY_SPORT"}, {KEY_SHOP, "KEY_SHOP"},
	{KEY_ALTERASE, "KEY_ALTERASE"}, {KEY_CANCEL, "KEY_CANCEL"},
	{KEY_BRIGHTNESSDOWN, "KEY_BRIGHTNESSDOWN"},
	{KEY_BRIGHTNESSUP, "KEY_BRIGHTNESSUP"}, {KEY_MEDIA, "KEY_MEDIA"},
	{KEY_SWITCHVIDEOMODE, "KEY_SWITCHVIDEOMODE"},
	{KEY_KBDILLUMTOGGLE, "KEY_KBDILLUMTOGGLE"},
	{KEY_KBDILLUMDOWN, "KEY_KBDILLUMDOWN"}, {KEY_KBDILLUMUP, "KEY_KBDILLUMUP"},
	{KEY_SEND, "KEY_SEND"}, {KEY_REPLY, "KEY_REPLY"},
	{KEY_FORWARDMAIL, "KEY_FORWARDMAIL"}, {KEY_SAVE, "KEY_SAVE"},
	{KEY_DOCUMENTS, "KEY_DOCUMENTS"}, {KEY_BATTERY, "KEY_BATTERY"},
	{KEY_BLUETOOTH, "KEY_BLUETOOTH"}, {KEY_WLAN, "KEY_WLAN"},
	{KEY_UWB, "KEY_UWB"}, {KEY_UNKNOWN, "KEY_UNKNOWN"},
	{KEY_VIDEO_NEXT, "KEY_VIDEO_NEXT"}, {KEY_VIDEO_PREV, "KEY_VIDEO_PREV"},
	{KEY_BRIGHTNESS_CYCLE, "KEY_BRIGHTNESS_CYCLE"},
	{KEY_BRIGHTNESS_AUTO, "KEY_BRIGHTNESS_AUTO"},
	{KEY_DISPLAY_OFF, "KEY_DISPLAY_OFF"}, {KEY_WWAN, "KEY_WWAN"},
	{KEY_RFKILL, "KEY_RFKILL"}, {KEY_MICMUTE, "KEY_MICMUTE"},
	{BTN_0, "BTN_0"}, {BTN_1, "BTN_1"}, {BTN_2, "BTN_2"}, {BTN_3, "BTN_3"},
	{BTN_4, "BTN_4"}, {BTN_5, "BTN_5"}, {BTN_6, "BTN_6"}, {BTN_7, "BTN_7"},
	{BTN_8, "BTN_8"}, {BTN_9, "BTN_9"},
	{BTN_LEFT, "BTN_LEFT"}, {BTN_RIGHT, "BTN_RIGHT"},
	{BTN_MIDDLE, "BTN_MIDDLE"}, {BTN_SIDE, "BTN_SIDE"},
	{BTN_EXTRA, "BTN_EXTRA"}, {BTN_FORWARD, "BTN_FORWARD"},
	{BTN_BACK, "BTN_BACK"}, {BTN_TASK, "BTN_TASK"},
	{BTN_TRIGGER, "BTN_TRIGGER"}, {BTN_THUMB, "BTN_THUMB"},
	{BTN_THUMB2, "BTN_THUMB2"}, {BTN_TOP, "BTN_TOP"}, {BTN_TOP2, "BTN_TOP2"},
	{BTN_PINKIE, "BTN_PINKIE"}, {BTN_BASE, "BTN_BASE"},
	{BTN_BASE2, "BTN_BASE2"}, {BTN_BASE3, "BTN_BASE3"},
	{BTN_BASE4, "BTN_BASE4"}, {BTN_BASE5, "BTN_BASE5"},
	{BTN_BASE6, "BTN_BASE6"}, {BTN_DEAD, "BTN_DEAD"},
	{BTN_SOUTH, "BTN_SOUTH"}, {BTN_EAST, "BTN_EAST"}, {BTN_C, "BTN_C"},
	{BTN_NORTH, "BTN_NORTH"}, {BTN_WEST, "BTN_WEST"}, {BTN_Z, "BTN_Z"},
	{BTN_TL, "BTN_TL"}, {BTN_TR, "BTN_TR"}, {BTN_TL2, "BTN_TL2"},
	{BTN_TR2, "BTN_TR2"}, {BTN_SELECT, "BTN_SELECT"},
	{BTN_START, "BTN_START"}, {BTN_MODE, "BTN_MODE"},
	{BTN_THUMBL, "BTN_THUMBL"}, {BTN_THUMBR, "BTN_THUMBR"},
	{BTN_TOOL_PEN, "BTN_TOOL_PEN"}, {BTN_TOOL_RUBBER, "BTN_TOOL_RUBBER"},
	{BTN_TOOL_BRUSH, "BTN_TOOL_BRUSH"}, {BTN_TOOL_PENCIL, "BTN_TOOL_PENCIL"},
	{BTN_TOOL_AIRBRUSH, "BTN_TOOL_AIRBRUSH"},
	{BTN_TOOL_FINGER, "BTN_TOOL_FINGER"}, {BTN_TOOL_MOUSE, "BTN_TOOL_MOUSE"},
	{BTN_TOOL_LENS, "BTN_TOOL_LENS"},
	{BTN_TOOL_QUINTTAP, "BTN_TOOL_QUINTTAP"}, {BTN_STYLUS3, "BTN_STYLUS3"},
	{BTN_TOUCH, "BTN_TOUCH"}, {BTN_STYLUS, "BTN_STYLUS"},
	{BTN_STYLUS2, "BTN_STYLUS2"},
	{BTN_TOOL_DOUBLETAP, "BTN_TOOL_DOUBLETAP"},
	{BTN_TOOL_TRIPLETAP, "BTN_TOOL_TRIPLETAP"},
	{BTN_TOOL_QUADTAP, "BTN_TOOL_QUADTAP"},
	{BTN_GEAR_DOWN, "BTN_GEAR_DOWN"}, {BTN_GEAR_UP, "BTN_GEAR_UP"},
	{BTN_DPAD_UP, "BTN_DPAD_UP"}, {BTN_DPAD_DOWN, "BTN_DPAD_DOWN"},
	{BTN_DPAD_LEFT, "BTN_DPAD_LEFT"}, {BTN_DPAD_RIGHT, "BTN_DPAD_RIGHT"},
	{BTN_TRIGGER_HAPPY1, "BTN_TRIGGER_HAPPY1"},
	{BTN_TRIGGER_HAPPY2, "BTN_TRIGGER_HAPPY2"},
	{BTN_TRIGGER_HAPPY3, "BTN_TRIGGER_HAPPY3"},
	{BTN_TRIGGER_HAPPY4, "BTN_TRIGGER_HAPPY4"},
}

func init() {
	for _, kn := range keyNames {
		if _, ok := KEYToString[kn.code]; !ok {
			KEYToString[kn.code] = kn.name
		}
		KEYFromString[kn.name] = kn.code
	}
	for code, name := range ABSToString {
		ABSFromString[name] = code
	}
	for code, name := range RELToString {
		RELFromString[name] = code
	}
	for typ, name := range EVToString {
		EVFromString[name] = typ
	}
}

// codeToString routes code lookups to the right per-type table.
var codeToString = map[EvType]map[EvCode]string{
	EV_SYN: SYNToString,
	EV_KEY: KEYToString,
	EV_REL: RELToString,
	EV_ABS: ABSToString,
	EV_MSC: MSCToString,
	EV_SW:  SWToString,
	EV_LED: LEDToString,
	EV_SND: SNDToString,
	EV_REP: REPToString,
	EV_FF:  FFToString,
}

// codeMax is the static per-type code-space maximum. Bitset capacity and
// ioctl buffer sizes derive from it, never from observed data.
var codeMax = map[EvType]EvCode{
	EV_SYN: SYN_MAX,
	EV_KEY: KEY_MAX,
	EV_REL: REL_MAX,
	EV_ABS: ABS_MAX,
	EV_MSC: MSC_MAX,
	EV_SW:  SW_MAX,
	EV_LED: LED_MAX,
	EV_SND: SND_MAX,
	EV_REP: REP_MAX,
	EV_FF:  FF_MAX,
}

// TypeName returns the symbolic name for an event type,
// or a hex placeholder for types absent from the table.
func TypeName(t EvType) string {
	name, ok := EVToString[t]
	if !ok {
		return fmt.Sprintf("UNKNOWN_0x%02x", uint16(t))
	}
	return name
}

// CodeName returns the symbolic name for a code of the given type. Unknown
// codes are reported numerically rather than rejected, devices routinely
// carry codes newer than this table.
func CodeName(t EvType, c EvCode) string {
	table, ok := codeToString[t]
	if !ok {
		return fmt.Sprintf("UNKNOWN_0x%03x", uint16(c))
	}
	name, ok := table[c]
	if !ok {
		return fmt.Sprintf("UNKNOWN_0x%03x", uint16(c))
	}
	return name
}

// PropName returns the symbolic name for a device property bit.
func PropName(p EvProp) string {
	name, ok := PROPToString[p]
	if !ok {
		return fmt.Sprintf("UNKNOWN_0x%02x", uint16(p))
	}
	return name
}

// CodeMax returns the highest defined code for the given event type.
// Types without a defined code space fall back to the widest one (EV_KEY).
func CodeMax(t EvType) EvCode {
	max, ok := codeMax[t]
	if !ok {
		return KEY_MAX
	}
	return max
}

// CodeCount returns the size of the code space for the given event type.
func CodeCount(t EvType) int {
	return int(CodeMax(t)) + 1
}
