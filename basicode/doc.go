// This file is part of Tapecode.
//
// Tapecode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapecode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapecode.  If not, see <https://www.gnu.org/licenses/>.

// Package basicode encodes BASIC program listings as BASICODE cassette
// recordings. The result of an encoding is a complete WAV file of 8-bit mono
// PCM.
//
// A recording has the following structure:
//
//	leader    5 seconds of 2400Hz tone
//	0x82      start marker
//	data      one byte per character of the listing, top bit set
//	0x83      end marker
//	checksum  XOR of every byte above, markers included
//	trailer   5 seconds of 2400Hz tone
//
// Each byte is sent as an 11 bit frame, least significant bit first: a start
// bit of 0, the eight data bits and two stop bits of 1. A 1 bit is two waves
// at 2400Hz and a 0 bit is one wave at 1200Hz, so every bit lasts 1/1200th of
// a second.
//
// Line endings in the listing are converted to carriage returns, which is
// the BASICODE line terminator. The listing is otherwise sent as it is,
// byte for byte, with no interpretation of the BASIC program.
//
// Encoding is a pure function of the listing and the Options. Each call owns
// all the state it needs and calls may safely run concurrently.
package basicode
