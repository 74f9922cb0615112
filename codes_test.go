package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeName(t *testing.T) {
	assert.Equal(t, "EV_KEY", TypeName(EV_KEY))
	assert.Equal(t, "EV_ABS", TypeName(EV_ABS))
	assert.Equal(t, "UNKNOWN_0x1e", TypeName(EvType(0x1e)))
}

func TestCodeName(t *testing.T) {
	assert.Equal(t, "KEY_A", CodeName(EV_KEY, KEY_A))
	assert.Equal(t, "BTN_SOUTH", CodeName(EV_KEY, BTN_SOUTH))
	assert.Equal(t, "REL_WHEEL", CodeName(EV_REL, REL_WHEEL))
	assert.Equal(t, "ABS_MT_SLOT", CodeName(EV_ABS, ABS_MT_SLOT))
	assert.Equal(t, "SYN_DROPPED", CodeName(EV_SYN, SYN_DROPPED))

	// codes newer than the tables still render
	assert.Equal(t, "UNKNOWN_0x2fe", CodeName(EV_KEY, EvCode(0x2fe)))
	assert.Equal(t, "UNKNOWN_0x005", CodeName(EvType(0x1e), EvCode(5)))
}

func TestCodeNameAliases(t *testing.T) {
	// aliased codes resolve to the first registered name
	assert.Equal(t, "BTN_SOUTH", CodeName(EV_KEY, BTN_A))
	assert.Equal(t, "BTN_EAST", CodeName(EV_KEY, BTN_B))
}

func TestPropName(t *testing.T) {
	assert.Equal(t, "INPUT_PROP_POINTER", PropName(INPUT_PROP_POINTER))
	assert.Equal(t, "UNKNOWN_0x1f", PropName(EvProp(0x1f)))
}

func TestCodeMax(t *testing.T) {
	assert.Equal(t, EvCode(KEY_MAX), CodeMax(EV_KEY))
	assert.Equal(t, EvCode(ABS_MAX), CodeMax(EV_ABS))
	assert.Equal(t, EvCode(SW_MAX), CodeMax(EV_SW))

	// unknown types size against the widest code space
	assert.Equal(t, EvCode(KEY_MAX), CodeMax(EvType(0x1e)))
	assert.Equal(t, int(KEY_MAX)+1, CodeCount(EvType(0x1e)))
}

func TestFromStringTables(t *testing.T) {
	assert.Equal(t, EvCode(KEY_ESC), KEYFromString["KEY_ESC"])
	assert.Equal(t, EvCode(BTN_LEFT), KEYFromString["BTN_LEFT"])
	assert.Equal(t, EvCode(ABS_X), ABSFromString["ABS_X"])
	assert.Equal(t, EvCode(REL_HWHEEL), RELFromString["REL_HWHEEL"])
	assert.Equal(t, EvType(EV_MSC), EVFromString["EV_MSC"])

	_, ok := KEYFromString["KEY_DOES_NOT_EXIST"]
	assert.False(t, ok)
}
