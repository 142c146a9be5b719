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

// Package pulse synthesizes square (or sine) wave pulses into a wavbuffer.
//
// Each call to AddWave() draws one complete wave of the requested duration.
// The wave is anchored to the start of the call and not to an absolute clock.
// Because a wave's duration is rarely an exact multiple of the sample period,
// the time by which the final sample overshoots the wave is carried forward
// and consumed by the next wave. Timing errors therefore never accumulate,
// however many waves are written.
package pulse
