package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeSetCapacity(t *testing.T) {
	// capacity always covers the full static code space, codes near the
	// top must be addressable even on sets built from short kernel buffers
	set := NewAttributeSet(EV_KEY)
	set.Insert(KEY_MAX)
	assert.True(t, set.Contains(KEY_MAX))

	set = attributeSetFromBytes(EV_KEY, []byte{0x01})
	set.Insert(BTN_TRIGGER_HAPPY4)
	assert.True(t, set.Contains(EvCode(0)))
	assert.True(t, set.Contains(BTN_TRIGGER_HAPPY4))
}

func TestAttributeSetKernelFixture(t *testing.T) {
	// a kernel bitset buffer with bits 0, 2 and 75 set: code n lives in
	// byte n/8, bit n%8
	buf := make([]byte, 96)
	buf[0] = 0b00000101
	buf[9] = 0b00001000

	set := attributeSetFromBytes(EV_KEY, buf)
	assert.Equal(t, []EvCode{0, 2, 75}, set.Codes())
	assert.Equal(t, 3, set.Len())

	assert.True(t, set.Contains(0))
	assert.False(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.True(t, set.Contains(75))
	assert.False(t, set.Contains(76))
}

func TestAttributeSetInsertRemove(t *testing.T) {
	set := NewAttributeSet(EV_LED)

	set.Insert(LED_CAPSL)
	set.Insert(LED_NUML)
	assert.Equal(t, []EvCode{LED_NUML, LED_CAPSL}, set.Codes())

	set.Remove(LED_NUML)
	assert.Equal(t, []EvCode{LED_CAPSL}, set.Codes())
	assert.False(t, set.Contains(LED_NUML))

	// removing an absent code is a no-op
	set.Remove(LED_KANA)
	assert.Equal(t, 1, set.Len())
}

func TestAttributeSetOutOfRange(t *testing.T) {
	set := NewAttributeSet(EV_SND)

	set.Insert(EvCode(2000))
	assert.False(t, set.Contains(EvCode(2000)))
	assert.Equal(t, 0, set.Len())
}

func TestAttributeSetReplace(t *testing.T) {
	set := NewAttributeSet(EV_KEY)
	set.Insert(KEY_Z)
	set.Insert(BTN_LEFT)

	set.replace([]byte{0x02}) // only code 1
	assert.Equal(t, []EvCode{KEY_ESC}, set.Codes())
	assert.False(t, set.Contains(KEY_Z), "replace must clear stale bits")
	assert.False(t, set.Contains(BTN_LEFT))
}

func TestAttributeSetCloneIsIndependent(t *testing.T) {
	set := NewAttributeSet(EV_SW)
	set.Insert(SW_LID)

	c := set.clone()
	require.True(t, c.Contains(SW_LID))

	c.Insert(SW_DOCK)
	assert.False(t, set.Contains(SW_DOCK))
	assert.Equal(t, EV_SW, c.EvType())
}

func TestAttributeSetIterationRestartable(t *testing.T) {
	set := attributeSetFromBytes(EV_REL, []byte{0b101})
	first := set.Codes()
	second := set.Codes()
	assert.Equal(t, first, second)
}
