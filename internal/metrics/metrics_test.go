package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPipelineObjectsTotalIncrements(t *testing.T) {
	PipelineObjectsTotal.Reset()
	PipelineObjectsTotal.WithLabelValues("اطبع").Inc()
	PipelineObjectsTotal.WithLabelValues("اطبع").Inc()
	assert.Equal(t, float64(2), testutil.ToFloat64(PipelineObjectsTotal.WithLabelValues("اطبع")))
}

func TestBidiParagraphsTotalIncrements(t *testing.T) {
	before := testutil.ToFloat64(BidiParagraphsTotal)
	BidiParagraphsTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(BidiParagraphsTotal))
}
