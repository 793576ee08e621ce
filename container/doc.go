// Package container reads and writes vislog containers: self-describing files of
// named float64 datasets, each optionally referencing another dataset that holds
// its event timestamps.
//
// Writing:
//
//	w, err := container.NewWriter(container.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	_ = w.Add("ts_group_0", ref, "")
//	_ = w.Add("ts_event_1", eventTimes, "")
//	_ = w.Add("grp.temperature", values, "ts_event_1")
//	err = w.WriteFile("run-001.vis")
//
// Reading:
//
//	r, err := container.Open("run-001.vis")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	for _, name := range r.Datasets() {
//		info, _ := r.Info(name)
//		values, _ := r.Read(name)
//		...
//	}
//
// Each dataset payload is encoded with one of the value encodings of the encoding
// package and then compressed with one of the codecs of the compress package. A
// CRC-32C checksum of the stored payload is kept in the index and verified on read.
package container
