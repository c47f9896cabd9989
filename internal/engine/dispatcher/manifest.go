package dispatcher

import (
	"os"
	"strconv"
	"strings"

	"go.trai.ch/figc/internal/core/domain"
	"go.trai.ch/figc/internal/core/ports"
	"go.trai.ch/zerr"
)

// writeManifest dumps the planned invocations to a temp file so a crashed
// or killed run leaves a record of what was about to happen. The file is
// transient: removeManifest deletes it once dispatch finishes, success or
// not.
func writeManifest(worklist domain.Worklist, invocations []domain.Invocation) (string, error) {
	f, err := os.CreateTemp("", "figc-jobs-*.txt")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create job manifest")
	}

	var sb strings.Builder
	for i, job := range worklist {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\t')
		sb.WriteString(job.Unit.SourcePath.String())
		sb.WriteByte('\t')
		sb.WriteString(invocations[i].Digest)
		sb.WriteByte('\t')
		sb.WriteString(strings.Join(invocations[i].Argv, " "))
		sb.WriteByte('\n')
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, "failed to write job manifest")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, "failed to close job manifest")
	}

	return f.Name(), nil
}

func removeManifest(path string, logger ports.Logger) {
	if err := os.Remove(path); err != nil {
		logger.Warn("failed to remove job manifest: " + path)
	}
}
