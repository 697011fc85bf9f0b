package pptxbullet

import (
	"bytes"
	"io"
	"log"
)

func readerBytes(rdr io.ReadCloser) []byte {
	buf := new(bytes.Buffer)

	if rdr == nil {
		log.Printf("can't read bytes from empty reader")
		return nil

	}

	if _, err := buf.ReadFrom(rdr); err != nil {
		log.Printf("can't read bytes: %s", err)
		return nil
	}

	if err := rdr.Close(); err != nil {
		log.Printf("can't close reader: %s", err)
		return nil
	}

	return buf.Bytes()
}

// Encode node tree to xml bytes, optional <?xml ..?> header first
func nodeToXMLBytes(xnode *xmlNode, header []byte) []byte {
	buf := new(bytes.Buffer)
	if len(header) > 0 {
		buf.Write(header)
		buf.WriteByte('\n')
	}
	xnode.encode(buf)
	return buf.Bytes()
}

// Is slice contains item
func inSlice(a string, slice []string) bool {
	for _, b := range slice {
		if a == b {
			return true
		}
	}
	return false
}
