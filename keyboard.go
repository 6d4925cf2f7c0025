package timepick

import (
	"fmt"
	"strings"
)

// Key is a key press delivered to the picker. Digits are their rune values ('0'-'9').
type Key rune

const (
	KeyEnter  Key = '\n'
	KeyTab    Key = '\t'
	KeyDelete Key = '\b'
	KeyEscape Key = 0x1b
)

// digit returns the numeric value of a digit key.
func (k Key) digit() (int, bool) {
	if k < '0' || k > '9' {
		return -1, false
	}
	return int(k - '0'), true
}

const (
	maxTypedKeys = 4
	placeholder  = "-"
)

// legalNode is a step in the tree of digit sequences that can still become a valid
// 24 hour time. keys are the digits that lead into the node.
type legalNode struct {
	keys     []int
	children []*legalNode
}

func newLegalNode(keys ...int) *legalNode {
	return &legalNode{keys: keys}
}

func (n *legalNode) addChild(child *legalNode) {
	n.children = append(n.children, child)
}

func (n *legalNode) containsKey(key int) bool {
	for _, k := range n.keys {
		if k == key {
			return true
		}
	}
	return false
}

// canReach returns the child reached by typing key, or nil.
func (n *legalNode) canReach(key int) *legalNode {
	for _, child := range n.children {
		if child.containsKey(key) {
			return child
		}
	}
	return nil
}

// legalTimes accepts "H:MM" and "HH:MM" entries typed without the colon, such as
// 955 for 9:55 or 2309 for 23:09.
var legalTimes = buildLegalTimesTree()

func buildLegalTimesTree() *legalNode {
	root := newLegalNode()

	minuteFirstDigit := newLegalNode(0, 1, 2, 3, 4, 5)
	minuteSecondDigit := newLegalNode(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	minuteFirstDigit.addChild(minuteSecondDigit)

	// 0x and 1x
	firstDigit := newLegalNode(0, 1)
	root.addChild(firstDigit)

	// 00-15 may be an hour (00:09, 15:58) or an hour and minute tens (0:55, 1:08)
	secondDigit := newLegalNode(0, 1, 2, 3, 4, 5)
	firstDigit.addChild(secondDigit)
	secondDigit.addChild(minuteFirstDigit)

	// a third digit of 6-9 can only end an H:MM entry such as 0:56 or 1:08
	thirdDigit := newLegalNode(6, 7, 8, 9)
	secondDigit.addChild(thirdDigit)

	// 06-09 and 16-19 must be hours
	secondDigit = newLegalNode(6, 7, 8, 9)
	firstDigit.addChild(secondDigit)
	secondDigit.addChild(minuteFirstDigit)

	firstDigit = newLegalNode(2)
	root.addChild(firstDigit)

	// 20-23 are hours
	secondDigit = newLegalNode(0, 1, 2, 3)
	firstDigit.addChild(secondDigit)
	secondDigit.addChild(minuteFirstDigit)

	// 24 and 25 can only start 2:4x and 2:5x
	secondDigit = newLegalNode(4, 5)
	firstDigit.addChild(secondDigit)
	secondDigit.addChild(minuteSecondDigit)

	// 3-9 are single digit hours
	firstDigit = newLegalNode(3, 4, 5, 6, 7, 8, 9)
	root.addChild(firstDigit)
	firstDigit.addChild(minuteFirstDigit)

	return root
}

// keyEntry holds the digits typed while the picker is in keyboard mode.
type keyEntry struct {
	typed []int
}

func (e *keyEntry) empty() bool {
	return len(e.typed) == 0
}

func (e *keyEntry) reset() {
	e.typed = e.typed[:0]
}

// add appends a digit if the entry can still become a legal time, and reports whether it did.
func (e *keyEntry) add(digit int) bool {
	if len(e.typed) == maxTypedKeys {
		return false
	}

	e.typed = append(e.typed, digit)
	if !e.legalSoFar() {
		e.typed = e.typed[:len(e.typed)-1]
		return false
	}
	return true
}

// deleteLast removes the most recent digit.
func (e *keyEntry) deleteLast() (int, bool) {
	if e.empty() {
		return -1, false
	}
	last := e.typed[len(e.typed)-1]
	e.typed = e.typed[:len(e.typed)-1]
	return last, true
}

func (e *keyEntry) legalSoFar() bool {
	node := legalTimes
	for _, digit := range e.typed {
		node = node.canReach(digit)
		if node == nil {
			return false
		}
	}
	return true
}

// fullyLegal reports whether the digits typed so far already form a complete time.
func (e *keyEntry) fullyLegal() bool {
	hour, minute, _, _ := e.entered()
	return !checkTypedTime(hour, minute).fail
}

// entered reads the typed digits from the right: the last two are the minute and
// anything before them is the hour. Missing fields are -1. The zero flags report
// whether a leading zero was typed explicitly for the hour or the minute.
func (e *keyEntry) entered() (hour, minute int, hourZero, minuteZero bool) {
	hour, minute = -1, -1
	for i := 1; i <= len(e.typed); i++ {
		val := e.typed[len(e.typed)-i]
		switch i {
		case 1:
			minute = val
		case 2:
			minute += 10 * val
			minuteZero = val == 0
		case 3:
			hour = val
		case 4:
			hour += 10 * val
			hourZero = val == 0
		}
	}
	return hour, minute, hourZero, minuteZero
}

// display renders the entry as "HH:MM", with placeholders for digits not yet typed.
func (e *keyEntry) display() string {
	hour, minute, hourZero, minuteZero := e.entered()
	return formatTyped(hour, hourZero) + ":" + formatTyped(minute, minuteZero)
}

func formatTyped(value int, leadingZero bool) string {
	if value == -1 {
		return placeholder + placeholder
	}
	if leadingZero {
		return fmt.Sprintf("%02d", value)
	}
	return strings.ReplaceAll(fmt.Sprintf("%2d", value), " ", placeholder)
}
