package cmd

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/LENAX/ppm/internal/storage"
	"github.com/LENAX/ppm/pkg/api"
	"github.com/LENAX/ppm/pkg/cli/output"
	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage/memory"
	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI 对测试服务器执行命令并返回输出
func runCLI(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := output.Out, color.NoColor
	output.Out, color.NoColor = &buf, true
	t.Cleanup(func() { output.Out, color.NoColor = prevOut, prevNoColor })

	resetFlags(rootCmd)
	rootCmd.SetArgs(append([]string{"--server", url}, args...))
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags 恢复所有命令的参数默认值，避免用例之间互相影响
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func newTestServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repos := &storage.Repositories{
		Applicants: memory.NewMemoryRepo(memory.WithFixtures(model.ApplicantFixtures())),
		Addresses:  memory.NewMemoryRepo[model.Address](),
		Contacts:   memory.NewMemoryRepo(memory.WithFixtures(model.ContactFixtures())),
	}
	srv := httptest.NewServer(api.SetupRouter(repos, "test"))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestContactList(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, url, "contact", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "RELATIONSHIP")
	assert.Contains(t, out, "Charlie Brown")
	assert.Contains(t, out, "555-012-3456")
}

func TestApplicantGetJSON(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, url, "applicant", "get", "2", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"first_name": "Bob"`)
	assert.Contains(t, out, `"is_active": false`)
}

func TestAddressCreateUpdateDelete(t *testing.T) {
	url := newTestServer(t)

	out, err := runCLI(t, url, "address", "create", "--data", `{"street_no":"7","street":"Elm","owner_id":1,"owner_type":"Applicant"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "地址创建成功: 1")

	path := filepath.Join(t.TempDir(), "address.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"street":"Oak","city":"Boise"}`), 0644))
	out, err = runCLI(t, url, "address", "update", "1", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "地址更新成功: 1")

	out, err = runCLI(t, url, "address", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Oak")
	assert.Contains(t, out, "Boise")

	out, err = runCLI(t, url, "address", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "地址已删除: 1")

	_, err = runCLI(t, url, "address", "get", "1")
	assert.Error(t, err)
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	url := newTestServer(t)

	_, err := runCLI(t, url, "contact", "create", "--data", `{"firstname":"typo"}`)
	assert.Error(t, err)
}

func TestInvalidIDArg(t *testing.T) {
	url := newTestServer(t)

	_, err := runCLI(t, url, "contact", "get", "abc")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "http://unused", "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
