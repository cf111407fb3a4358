// Package services implements the driving port interfaces.
// Services contain the conversion orchestration and call out to
// driven ports (reader, writer, file sink, config store).
//
// Services never import adapters or format packages; the CLI injects
// the CellDesigner reader and the BioPAX writer factory.
package services
