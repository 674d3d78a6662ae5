package settings

import "testing"

func TestAudioQualityMapsAreInverse(t *testing.T) {
	if len(AudioQualityByName) != len(AudioQualityNames) {
		t.Fatalf("map sizes differ: %d names, %d qualities", len(AudioQualityByName), len(AudioQualityNames))
	}
	for _, q := range AudioQualities() {
		name, ok := AudioQualityNames[q]
		if !ok {
			t.Fatalf("quality %d has no name", int(q))
		}
		if back := AudioQualityByName[name]; back != q {
			t.Fatalf("round trip %v -> %q -> %v", q, name, back)
		}
		if q.SampleRate() == 0 {
			t.Fatalf("quality %v has no sample rate", q)
		}
	}
}

func TestBuildQualityMapsPanicsOnDuplicateName(t *testing.T) {
	original := audioQualityTable
	t.Cleanup(func() { audioQualityTable = original })

	audioQualityTable = append(append(audioQualityTable[:0:0], original...), struct {
		quality AudioQuality
		name    string
	}{AudioQuality(99), "High"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate name")
		}
	}()
	buildQualityMaps()
}

func TestSampleRatesIncrease(t *testing.T) {
	previous := 0
	for _, q := range AudioQualities() {
		if q.SampleRate() <= previous {
			t.Fatalf("sample rate for %v (%d) not above %d", q, q.SampleRate(), previous)
		}
		previous = q.SampleRate()
	}
}

func TestOutputModeOrdinalsAreStable(t *testing.T) {
	want := map[OutputMode]int{OutputWAV: 0, OutputMP3: 1, OutputOGG: 2, OutputFLAC: 3}
	for mode, ordinal := range want {
		if int(mode) != ordinal {
			t.Fatalf("%v has ordinal %d, want %d", mode, int(mode), ordinal)
		}
		decoded, err := decodeOutputMode(string(rune('0' + ordinal)))
		if err != nil || decoded != mode {
			t.Fatalf("decode %d = %v, %v", ordinal, decoded, err)
		}
	}
	if len(OutputModes()) != len(OutputModeNames) {
		t.Fatalf("every mode needs a label")
	}
}

func TestDecodeOutputModeRejectsBadValues(t *testing.T) {
	for _, value := range []string{"", "-1", "4", "WAV", "1.5"} {
		if _, err := decodeOutputMode(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseAudioQuality(t *testing.T) {
	cases := map[string]AudioQuality{
		"low":     QualityLow,
		"Normal":  QualityNormal,
		" HIGH ":  QualityHigh,
		"highest": QualityHighest,
	}
	for input, want := range cases {
		got, err := ParseAudioQuality(input)
		if err != nil {
			t.Fatalf("ParseAudioQuality(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseAudioQuality(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseAudioQuality("ultra"); err == nil {
		t.Fatal("expected error for unknown quality")
	}
}

func TestParseOutputMode(t *testing.T) {
	cases := map[string]OutputMode{
		"wav":        OutputWAV,
		"MP3":        OutputMP3,
		"ogg":        OutputOGG,
		"OGG Vorbis": OutputOGG,
		"flac":       OutputFLAC,
		"3":          OutputFLAC,
	}
	for input, want := range cases {
		got, err := ParseOutputMode(input)
		if err != nil {
			t.Fatalf("ParseOutputMode(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseOutputMode(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseOutputMode("aiff"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExtensions(t *testing.T) {
	want := map[OutputMode]string{OutputWAV: ".wav", OutputMP3: ".mp3", OutputOGG: ".ogg", OutputFLAC: ".flac"}
	for mode, ext := range want {
		if got := mode.Extension(); got != ext {
			t.Fatalf("%v extension = %q, want %q", mode, got, ext)
		}
	}
}

func TestNullableEncoding(t *testing.T) {
	if encodeNullable("") != "None" || decodeNullable("None") != "" {
		t.Fatal("empty value must persist as None")
	}
	if decodeNullable(encodeNullable("/usr/bin/ffmpeg")) != "/usr/bin/ffmpeg" {
		t.Fatal("path must round trip unchanged")
	}
}
