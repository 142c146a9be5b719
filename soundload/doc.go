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

// Package soundload loads tape recordings from WAV or MP3 files and reports
// on the properties of the signal. It is used to check a recording before it
// is played into a cassette interface, or to compare a recording made by
// other means.
//
// The package does not decode the data in a recording. Analyse() measures
// the tone at the start and end of the recording, which for a BASICODE
// recording are the leader and trailer tones of 2400Hz.
package soundload
