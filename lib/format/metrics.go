package format

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"io"
)

func countEncoded(f IFormat, payload, encoded int) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`dbytes_documents_encoded_total{format=%q}`, f.Name())).Inc()
	metrics.GetOrCreateCounter(fmt.Sprintf(`dbytes_payload_bytes_encoded_total{format=%q}`, f.Name())).Add(payload)
	metrics.GetOrCreateCounter(fmt.Sprintf(`dbytes_document_bytes_encoded_total{format=%q}`, f.Name())).Add(encoded)
}

func countDecoded(f IFormat, encoded, payload int) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`dbytes_documents_decoded_total{format=%q}`, f.Name())).Inc()
	metrics.GetOrCreateCounter(fmt.Sprintf(`dbytes_document_bytes_decoded_total{format=%q}`, f.Name())).Add(encoded)
	metrics.GetOrCreateCounter(fmt.Sprintf(`dbytes_payload_bytes_decoded_total{format=%q}`, f.Name())).Add(payload)
}

// WriteMetrics writes the document counters in Prometheus text format to w
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
