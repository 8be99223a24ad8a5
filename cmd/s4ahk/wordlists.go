// Copyright 2026 fincs <fincs.ahk@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

// Built-in word lists. These are starter sets, not the full keyword
// inventory; callers with richer lists can override any slot with -wl.

const (
	ahk2DirectivesExpr = `clipboardtimeout errorstdout hotif hotiftimeout hotstring
		inputlevel maxthreads maxthreadsbuffer maxthreadsperhotkey notrayicon
		singleinstance suspendexempt usehook warn winactivateforce`

	ahk2DirectivesStr = `dllload include includeagain requires`

	ahk2ControlFlow = `break case catch continue else finally for global goto if
		local loop return static switch throw try until while`

	ahk2Reserved = `and contains false in is isset not or super this true unset`

	namedKeys = `alt appskey backspace bs capslock ctrl del delete down end enter
		esc escape f1 f2 f3 f4 f5 f6 f7 f8 f9 f10 f11 f12 f13 f14 f15 f16 f17
		f18 f19 f20 f21 f22 f23 f24 home ins insert lalt lbutton lctrl left
		lshift lwin mbutton numlock numpad0 numpad1 numpad2 numpad3 numpad4
		numpad5 numpad6 numpad7 numpad8 numpad9 numpadadd numpaddiv numpaddot
		numpadenter numpadmult numpadsub pause pgdn pgup printscreen ralt
		rbutton rctrl right rshift rwin scrolllock shift space tab up
		wheeldown wheelleft wheelright wheelup xbutton1 xbutton2`

	ahk1ControlFlow = `break continue else for gosub goto if ifequal ifexist
		ifgreater ifinstring ifless ifmsgbox ifnotequal ifnotexist ifnotinstring
		ifwinactive ifwinexist ifwinnotactive ifwinnotexist loop return while`

	ahk1Commands = `clipwait controlclick controlsend critical fileappend
		filecopy filedelete fileread gui guicontrol hotkey inputbox keywait
		menu mouseclick mousemove msgbox run runwait send sendinput sendraw
		settimer settitlematchmode sleep sort stringreplace stringsplit
		tooltip traytip winactivate winclose winget winmove winwait`

	ahk1Functions = `abs acos asin atan ceil chr cos exp fileexist floor
		getkeystate instr ln log mod onmessage regexmatch regexreplace round
		sin sqrt strlen strsplit substr tan varsetcapacity winactive winexist`

	ahk1Directives = `allowsamelinecomments clipboardtimeout commentflag
		errorstdout escapechar hotkeyinterval hotkeymodifiertimeout hotstring
		include includeagain installkeybdhook installmousehook maxhotkeysperinterval
		maxmem maxthreads maxthreadsbuffer maxthreadsperhotkey noenv notrayicon
		persistent singleinstance usehook warn winactivateforce`

	ahk1Variables = `a_ahkpath a_ahkversion a_computername a_desktop a_hour
		a_index a_linenumber a_loopfield a_loopfilename a_min a_mon a_now
		a_scriptdir a_scriptfullpath a_scriptname a_sec a_space a_tab
		a_thishotkey a_thislabel a_tickcount a_timeidle a_username a_workingdir
		a_yday a_year clipboard clipboardall comspec errorlevel`

	ahk1SpecialParams = `ahk_class ahk_group ahk_id ahk_pid grid hide icon
		join list ltrim mouse off on pixel relative rgb rtrim screen toggle
		useerrorlevel`
)
