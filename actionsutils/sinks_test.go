package actionsutils_test

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/envmgr/versiongate/actionsutils"
)

var _ = Describe("Sinks", func() {

	var fs afero.Fs

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
	})

	readFile := func(path string) string {
		content, err := afero.ReadFile(fs, path)
		Expect(err).NotTo(HaveOccurred())
		return string(content)
	}

	var _ = Context("NewSinksFromEnv", func() {

		BeforeEach(func() {
			os.Unsetenv(actionsutils.OutputEnvName)
			os.Unsetenv(actionsutils.SummaryEnvName)
		})

		AfterEach(func() {
			os.Unsetenv(actionsutils.OutputEnvName)
			os.Unsetenv(actionsutils.SummaryEnvName)
		})

		It("errors when GITHUB_OUTPUT is not set", func() {
			os.Setenv(actionsutils.SummaryEnvName, "summary")
			sinks, err := actionsutils.NewSinksFromEnv(fs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("GITHUB_OUTPUT environment variable is not set"))
			Expect(sinks).To(BeNil())
		})

		It("errors when GITHUB_STEP_SUMMARY is not set", func() {
			os.Setenv(actionsutils.OutputEnvName, "output")
			sinks, err := actionsutils.NewSinksFromEnv(fs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("GITHUB_STEP_SUMMARY environment variable is not set"))
			Expect(sinks).To(BeNil())
		})

		It("errors when a variable is set but empty", func() {
			os.Setenv(actionsutils.OutputEnvName, "")
			os.Setenv(actionsutils.SummaryEnvName, "summary")
			_, err := actionsutils.NewSinksFromEnv(fs)
			Expect(err).To(HaveOccurred())
		})

		It("builds sinks when both variables are set", func() {
			os.Setenv(actionsutils.OutputEnvName, "output")
			os.Setenv(actionsutils.SummaryEnvName, "summary")
			sinks, err := actionsutils.NewSinksFromEnv(fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(sinks).NotTo(BeNil())
		})
	})

	var _ = Context("WriteOutput", func() {
		It("appends name=value records", func() {
			sinks := actionsutils.NewSinks(fs, "output", "summary")
			Expect(sinks.WriteOutput("release_needed", "true")).To(Succeed())
			Expect(sinks.WriteOutput("tag", "1.2.3")).To(Succeed())
			Expect(readFile("output")).To(Equal("release_needed=true\ntag=1.2.3\n"))
		})

		It("preserves existing file content", func() {
			Expect(afero.WriteFile(fs, "output", []byte("earlier=step\n"), 0644)).To(Succeed())
			sinks := actionsutils.NewSinks(fs, "output", "summary")
			Expect(sinks.WriteOutput("tag", "1.2.3")).To(Succeed())
			Expect(readFile("output")).To(Equal("earlier=step\ntag=1.2.3\n"))
		})
	})

	var _ = Context("WriteSummary", func() {
		It("appends lines verbatim", func() {
			sinks := actionsutils.NewSinks(fs, "output", "summary")
			Expect(sinks.WriteSummary("## Tag: 1.2.3")).To(Succeed())
			Expect(sinks.WriteSummary("No release needed.")).To(Succeed())
			Expect(readFile("summary")).To(Equal("## Tag: 1.2.3\nNo release needed.\n"))
		})
	})
})
