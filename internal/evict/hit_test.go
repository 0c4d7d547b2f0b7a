package evict

import (
	"path"
	"reflect"
	"strings"
	"testing"
)

func Test_parseHit(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    Hit
		wantErr bool
	}{
		{
			"typed hit from valid fields",
			[]string{
				"NODE_1_length_7480_cov_512.652072", "OP021712.1", "0.0", "450", "95.0",
				"7480", "1", "7428", "262", "7689", "103903", "Coxsackievirus B5", "7428",
			},
			Hit{
				QSeqID:   "NODE_1_length_7480_cov_512.652072",
				SSeqID:   "OP021712.1",
				EValue:   0.0,
				BitScore: 450,
				PIdent:   95.0,
				QLen:     7480,
				QStart:   1,
				QEnd:     7428,
				SStart:   262,
				SEnd:     7689,
				TaxID:    103903,
				SComName: "Coxsackievirus B5",
				Length:   7428,
			},
			false,
		},
		{
			"unparsable bitscore",
			[]string{
				"NODE_1_length_7480_cov_512.652072", "OP021712.1", "0.0", "NA", "95.0",
				"7480", "1", "7428", "262", "7689", "103903", "Coxsackievirus B5", "7428",
			},
			Hit{},
			true,
		},
		{
			"unparsable taxid",
			[]string{
				"NODE_1_length_7480_cov_512.652072", "OP021712.1", "0.0", "450", "95.0",
				"7480", "1", "7428", "262", "7689", "x", "Coxsackievirus B5", "7428",
			},
			Hit{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHit(tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseHit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseHit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_readHitRows(t *testing.T) {
	table := `qseqid,sseqid,evalue,bitscore,pident,qlen,qstart,qend,sstart,send,taxid,scomname,length
NODE_1_length_500_cov_80.0,OP021712.1,1e-30,120,92.0,500,1,400,10,410,103903,Coxsackievirus B5,400
NODE_1_length_500_cov_80.0,OP021712.1,1e-30,oops,93.0,500,1,400,10,410,103903,Coxsackievirus B5,400
short,row
NODE_2_length_300_cov_60.0,MN245552.1,1e-20,110,91.0,300,1,250,260,10,1045865,Echovirus E30,250
`

	hits, err := readHitRows(strings.NewReader(table), true)
	if err != nil {
		t.Fatalf("readHitRows() error = %v", err)
	}

	// the malformed and short rows are dropped, the rest survive
	if len(hits) != 2 {
		t.Fatalf("readHitRows() returned %d hits, want 2: %+v", len(hits), hits)
	}
	if hits[0].QSeqID != "NODE_1_length_500_cov_80.0" || hits[1].SComName != "Echovirus E30" {
		t.Errorf("readHitRows() kept the wrong rows: %+v", hits)
	}
}

func TestReadHits(t *testing.T) {
	hits, err := ReadHits(path.Join("testdata", "sample.blast"))
	if err != nil {
		t.Fatalf("ReadHits() error = %v", err)
	}

	// 32 data rows in the fixture, one with an unparsable bitscore
	if len(hits) != 31 {
		t.Errorf("ReadHits() returned %d hits, want 31", len(hits))
	}

	for _, hit := range hits {
		if hit.QSeqID == "" || hit.SComName == "" {
			t.Errorf("ReadHits() returned a hit without ids: %+v", hit)
		}
	}
}

func TestReadRawHits(t *testing.T) {
	hits, err := ReadRawHits(path.Join("testdata", "raw.blast"))
	if err != nil {
		t.Fatalf("ReadRawHits() error = %v", err)
	}

	// 8 rows in the fixture, one with an unparsable bitscore
	if len(hits) != 7 {
		t.Errorf("ReadRawHits() returned %d hits, want 7", len(hits))
	}
}

func TestReadHits_missing(t *testing.T) {
	if _, err := ReadHits(path.Join("testdata", "nope.blast")); err == nil {
		t.Error("ReadHits() expected an error for a missing file")
	}
}
