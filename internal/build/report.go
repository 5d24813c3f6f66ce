package build

import (
	"fmt"
	"io"

	"github.com/isaccanedo/style-dictionary/internal/config"
)

const (
	collisionHint = `This is caused by:
    * conflicting or similar paths/names in token definitions
    * transforms that reduce name specificity, such as removing or renaming path segments
    * overly inclusive file filters`
	referenceHint = "This is caused by combining a filter with the outputReferences option."
)

// reportFile prints the outcome of one emission: a green check when the
// output is clean, otherwise a warning block per finding. Nested formats
// keep the tree shape, so repeated leaf names are expected there and the
// collision warning stays quiet; reference losses always surface.
func (b *Builder) reportFile(res *Result, file config.File, nested, flushRefs bool) {
	collisions := res.Collisions
	if nested {
		collisions = 0
	}
	refs := 0
	if flushRefs {
		refs = res.ReferenceLosses
	}

	if collisions == 0 && refs == 0 {
		b.print(func(w io.Writer) {
			successColor.Fprintf(w, "✔︎ %s\n", res.Destination)
		})
		return
	}

	var collisionMsgs []string
	if collisions > 0 {
		collisionMsgs = b.Messages.Fetch(collisionGroup(file.Destination))
	}
	var refMsgs []string
	if refs > 0 {
		refMsgs = b.Messages.Flush(lostReferenceGroup)
	}

	b.print(func(w io.Writer) {
		warnColor.Fprintf(w, "⚠️ %s\n", res.Destination)
		if len(collisionMsgs) > 0 {
			fmt.Fprintf(w, "While building %s, token name collisions were found; output may be unexpected.\n", file.Destination)
			for _, m := range collisionMsgs {
				fmt.Fprintf(w, "    %s\n", m)
			}
			infoColor.Fprintln(w, collisionHint)
		}
		if len(refMsgs) > 0 {
			fmt.Fprintf(w, "While building %s, filtered-out token references were found; output may be unexpected. These references are used but not defined in the file:\n", file.Destination)
			for _, m := range refMsgs {
				fmt.Fprintf(w, "    %s\n", m)
			}
			infoColor.Fprintln(w, referenceHint)
		}
	})
}

// reportLostReferences drains the run-scoped reference-loss group once and
// prints a platform-level warning block. Parallel builds use it in place
// of per-file flushing, which would race between emissions.
func (b *Builder) reportLostReferences(platform config.Platform) int {
	msgs := b.Messages.Flush(lostReferenceGroup)
	if len(msgs) == 0 {
		return 0
	}
	b.print(func(w io.Writer) {
		warnColor.Fprintf(w, "⚠️ platform %s\n", platform.Name)
		fmt.Fprintf(w, "While building platform %s, filtered-out token references were found; output may be unexpected. These references are used but not defined in the built files:\n", platform.Name)
		for _, m := range msgs {
			fmt.Fprintf(w, "    %s\n", m)
		}
		infoColor.Fprintln(w, referenceHint)
	})
	return len(msgs)
}
