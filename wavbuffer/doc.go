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

// Package wavbuffer owns the byte buffer of an 8-bit mono PCM WAV file. The
// size of the buffer is fixed on creation and the RIFF/WAVE header is written
// immediately. Samples are then appended one at a time with AddSample() and
// the buffer is completed with Finalise(), which pads any unwritten samples
// with the silence level.
//
// The buffer never grows. Attempting to write past the end of the buffer, or
// to write a value that can not be represented as an unsigned 8-bit sample,
// is an error. Either error indicates that the buffer was sized incorrectly by
// the caller and should be treated as unrecoverable.
package wavbuffer
