// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"

	"github.com/ik5/noisetonoise/audio"
	"github.com/ik5/noisetonoise/formats/mp3"
)

// Example_register adds MP3 support to a registry. Decoded MP3 is always
// stereo, so the noise pipeline reads channel 0 (left).
func Example_register() {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})

	dec, err := reg.ForPath("session/take.MP3")
	fmt.Println(dec != nil, err)
	// Output:
	// true <nil>
}
