//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

const sample = `Venue 2x3
Seat 0x0 1
Seat 0x1 6
SeatHold Reserved 1x0 1x2
`

type snapshot struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
	Stats struct {
		Consumed int `json:"consumed"`
		Applied  int `json:"applied"`
		Dropped  int `json:"dropped"`
	} `json:"stats"`
}

// decodeSnapshot skips the echoed input lines and decodes the trailing JSON.
func decodeSnapshot(out []byte) snapshot {
	GinkgoHelper()
	i := bytes.IndexByte(out, '{')
	Expect(i).To(BeNumerically(">=", 0))
	var snap snapshot
	Expect(json.Unmarshal(out[i:], &snap)).To(Succeed())
	return snap
}

var _ = Describe("Headless viewer", func() {
	It("echoes every consumed line and prints the final grid", func() {
		By("Running venueview over stdin with a text snapshot")
		session := run(sample, "--headless", "--exit-on-drain", "--speed", "1", "-o", "text")
		Expect(session.ExitCode()).To(Equal(0))

		Expect(session.Out).To(gbytes.Say("Venue 2x3\nSeat 0x0 1\nSeat 0x1 6\nSeatHold Reserved 1x0 1x2\n"))
		Expect(session.Out).To(gbytes.Say("ROW"))
		Expect(session.Out).To(gbytes.Say("consumed=4 applied=4 ignored=0 dropped=0"))
	})

	It("colors seats with the classic palette", func() {
		session := run(sample, "--headless", "--exit-on-drain", "--speed", "1", "-o", "json")
		Expect(session.ExitCode()).To(Equal(0))

		snap := decodeSnapshot(session.Out.Contents())
		Expect(snap.Rows).To(Equal(2))
		Expect(snap.Cols).To(Equal(3))
		Expect(snap.Cells[0][0]).To(Equal("#c5c5c5"))
		Expect(snap.Cells[0][1]).To(Equal("#1e1e1e"))
		Expect(snap.Cells[1]).To(Equal([]string{"#c8c8c8", "#c8c8c8", "#c8c8c8"}))
		Expect(snap.Stats.Applied).To(Equal(4))
	})

	It("uses the compact preset colors", func() {
		session := run(sample, "--headless", "--exit-on-drain", "--speed", "1", "--preset", "compact", "-o", "json")
		Expect(session.ExitCode()).To(Equal(0))

		snap := decodeSnapshot(session.Out.Contents())
		Expect(snap.Cells[0][0]).To(Equal("#ebebeb"))
		Expect(snap.Cells[0][1]).To(Equal("#e6e6e6"))
		Expect(snap.Cells[1][0]).To(Equal("#404040"))
	})

	It("accepts legacy single-dash options", func() {
		path := writeInput("legacy.txt", sample)
		session := run("", "-inputFile", path, "-speed=1", "--headless", "--exit-on-drain")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say("Seat 0x1 6"))
	})

	It("logs dropped lines and keeps going", func() {
		session := run("Seat 0x0 1\nVenue 1x1\nSeat 3x3 1\nSeat 0x0 2\n",
			"--headless", "--exit-on-drain", "--speed", "1", "--log-level", "warn", "-o", "text")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Err).To(gbytes.Say("dropped line"))
		Expect(session.Out).To(gbytes.Say("dropped=2"))
	})

	It("drops a venue too large to display and keeps running", func() {
		session := run("Venue 100000x100000\nSeat 0x0 1\nVenue 1x1\nSeat 0x0 1\n",
			"--headless", "--exit-on-drain", "--speed", "1", "-o", "text")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Err).To(gbytes.Say("exceeds"))
		Expect(session.Out).To(gbytes.Say("consumed=4 applied=2 ignored=0 dropped=2"))
	})

	It("prints usage to stderr and exits 0", func() {
		for _, flag := range []string{"-u", "--usage", "-usage", "-Usage"} {
			session := run("", flag)
			Expect(session.ExitCode()).To(Equal(0), flag)
			Expect(session.Err).To(gbytes.Say("Usage:"), flag)
			Expect(session.Out.Contents()).To(BeEmpty(), flag)
		}
	})

	It("treats a bad flag as a usage error", func() {
		session := run("", "--speed", "fast")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Err).To(gbytes.Say("Error: invalid argument"))
		Expect(session.Err).To(gbytes.Say("Usage:"))
	})

	It("fails when the input file cannot be opened", func() {
		session := run("", "-i", filepath.Join(GinkgoT().TempDir(), "missing.txt"), "--headless")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("E101"))
	})

	It("rejects a non-positive speed", func() {
		session := run(sample, "--headless", "--speed", "0")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("E402"))
	})

	It("reads settings from a config file", func() {
		cfg := writeInput("config.yaml", "viewer:\n  scheme: gray\n  speed: 1\n")
		session := run("Venue 1x1\nSeatHold Expired 0x0\n", "--config", cfg, "--headless", "--exit-on-drain", "-o", "text")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say("#c0c0c0"))
	})

	It("writes an audit transcript", func() {
		dir := GinkgoT().TempDir()
		session := run("Venue 1x1\nSeat 9x9 1\n", "--headless", "--exit-on-drain", "--speed", "1", "--audit-dir", dir)
		Expect(session.ExitCode()).To(Equal(0))

		sessions, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		var sessionDir string
		for _, e := range sessions {
			if e.IsDir() {
				sessionDir = filepath.Join(dir, e.Name())
			}
		}
		Expect(sessionDir).NotTo(BeEmpty())

		transcript, err := os.ReadFile(filepath.Join(sessionDir, "transcript.log"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(transcript)).To(ContainSubstring("Venue 1x1\nSeat 9x9 1\n"))

		dropped, err := os.ReadFile(filepath.Join(sessionDir, "dropped.log"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(dropped)).To(ContainSubstring("outside venue"))
	})
})

var _ = Describe("validate", func() {
	It("succeeds on a clean stream", func() {
		session := run(sample, "validate")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say("stdin: ok \\(4 lines\\)"))
	})

	It("reports dropped lines and exits 1", func() {
		path := writeInput("bad.txt", "Venue 2x2\nSeat 0x0 x\nSeat 4x4 1\n")
		session := run("", "validate", path, "-o", "json")
		Expect(session.ExitCode()).To(Equal(1))

		var report struct {
			Dropped []struct {
				Line int    `json:"line"`
				Code string `json:"code"`
			} `json:"dropped"`
		}
		Expect(json.Unmarshal(session.Out.Contents(), &report)).To(Succeed())
		Expect(report.Dropped).To(HaveLen(2))
		Expect(report.Dropped[0].Line).To(Equal(2))
		Expect(report.Dropped[0].Code).To(Equal("E203"))
		Expect(report.Dropped[1].Code).To(Equal("E301"))
	})
})

var _ = Describe("JSON errors", func() {
	It("reports a fatal error as JSON when JSON output was requested", func() {
		session := run("", "validate", filepath.Join(GinkgoT().TempDir(), "missing.txt"), "-o", "json")
		Expect(session.ExitCode()).To(Equal(1))

		var decoded map[string]any
		Expect(json.Unmarshal(session.Err.Contents(), &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("error"))
		Expect(decoded["error"]).To(HaveKeyWithValue("code", "E101"))
	})
})

var _ = Describe("version", func() {
	It("prints JSON", func() {
		session := run("", "version", "-o", "json")
		Expect(session.ExitCode()).To(Equal(0))
		var info map[string]any
		Expect(json.Unmarshal(session.Out.Contents(), &info)).To(Succeed())
		Expect(info).To(HaveKey("version"))
		Expect(info).To(HaveKeyWithValue("defaultPreset", "classic"))
		Expect(info["presets"]).To(ConsistOf("classic", "compact"))
	})
})
